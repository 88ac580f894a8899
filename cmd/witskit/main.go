package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/bujia-iot/iot-wits/pkg/protocol"
	"github.com/bujia-iot/iot-wits/pkg/symbols"
	"github.com/bujia-iot/iot-wits/pkg/transport"
	"github.com/bujia-iot/iot-wits/pkg/units"
)

// WITS Level 0命令行工具：解码、单位转换、符号字典查询与在线数据流接入
const usageText = `witskit - WITS Level 0 数据工具

用法:
  witskit decode   [-file 路径] [-metric] [-strict] [-format table|json|raw] [-output 路径]
                   [-convert-to-metric|-convert-to-fps] [数据]
  witskit convert  <数值> <源单位> <目标单位>
  witskit symbols  [-record N] [-search 关键词] [-list-records]
  witskit validate [-file 路径] [数据]
  witskit stream   [-metric] [-strict] [-max-frames N] [-format table|json|raw]
                   [-convert-to-metric|-convert-to-fps] <来源URL>
  witskit demo

来源URL: tcp://host:port  serial:///dev/ttyUSB0?baud=9600  file:///path/data.wits
`

// 演示用样例数据，两帧钻井实时记录
const demoData = "&&\n01083650.40\n011323.38\n012112.5\n!!\n&&\n01083651.20\n011324.10\n012112.7\n!!\n"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "decode":
		err = cmdDecode(os.Args[2:])
	case "convert":
		err = cmdConvert(os.Args[2:])
	case "symbols":
		err = cmdSymbols(os.Args[2:])
	case "validate":
		err = cmdValidate(os.Args[2:])
	case "stream":
		err = cmdStream(os.Args[2:])
	case "demo":
		err = cmdDemo()
	default:
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// frameFlags decode与stream共用的输出/换算参数
type frameFlags struct {
	metric  *bool
	strict  *bool
	format  *string
	output  *string
	toMet   *bool
	toFPS   *bool
	out     io.Writer
	closeFn func() error
}

func addFrameFlags(fs *flag.FlagSet) *frameFlags {
	return &frameFlags{
		metric: fs.Bool("metric", false, "使用公制单位"),
		strict: fs.Bool("strict", false, "严格模式，单行错误即中止整帧"),
		format: fs.String("format", "table", "输出格式: table/json/raw"),
		output: fs.String("output", "", "输出到文件，默认标准输出"),
		toMet:  fs.Bool("convert-to-metric", false, "解码后整帧换算为公制"),
		toFPS:  fs.Bool("convert-to-fps", false, "解码后整帧换算为英制"),
	}
}

// prepare 校验参数并打开输出目标
func (f *frameFlags) prepare() error {
	switch *f.format {
	case "table", "json", "raw":
	default:
		return fmt.Errorf("未知输出格式 %q (支持 table/json/raw)", *f.format)
	}
	if *f.toMet && *f.toFPS {
		return fmt.Errorf("convert-to-metric与convert-to-fps不能同时指定")
	}

	f.out = os.Stdout
	f.closeFn = func() error { return nil }
	if *f.output != "" {
		file, err := os.Create(*f.output)
		if err != nil {
			return fmt.Errorf("创建输出文件失败: %w", err)
		}
		f.out = file
		f.closeFn = file.Close
	}
	return nil
}

func (f *frameFlags) options() protocol.Options {
	unitSystem := protocol.UnitSystemFPS
	if *f.metric {
		unitSystem = protocol.UnitSystemMetric
	}
	return protocol.Options{StrictMode: *f.strict, UnitSystem: unitSystem}
}

// emit 按选定格式输出一帧，需要时先做整帧换算
func (f *frameFlags) emit(frame *protocol.Frame) error {
	if *f.toMet || *f.toFPS {
		target := protocol.UnitSystemFPS
		if *f.toMet {
			target = protocol.UnitSystemMetric
		}
		_, errs := frame.ConvertTo(target, nil)
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "换算警告: %v\n", e)
		}
	}

	switch *f.format {
	case "json":
		return printFrameJSON(f.out, frame)
	case "raw":
		_, err := fmt.Fprintln(f.out, frame.RawData)
		return err
	default:
		printFrame(f.out, frame)
		return nil
	}
}

// readInput 从-file或位置参数读取待处理数据
func readInput(file string, args []string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("读取文件失败: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		// 允许把\n写成字面转义
		return strings.ReplaceAll(strings.Join(args, "\n"), "\\n", "\n"), nil
	}
	return "", fmt.Errorf("缺少输入数据，使用-file或位置参数提供")
}

// printFrame 表格形式输出一帧
func printFrame(out io.Writer, frame *protocol.Frame) {
	fmt.Fprintf(out, "帧 %s  来源=%s  时间=%s\n", frame.FrameID, frame.Source, frame.Timestamp.Format("2006-01-02 15:04:05"))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "代码\t名称\t数值\t单位\t描述")
	for _, dp := range frame.DataPoints {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", dp.SymbolCode, dp.SymbolName, dp.Parsed.String(), dp.Unit, dp.SymbolDescription)
	}
	w.Flush()
	for _, e := range frame.Errors {
		fmt.Fprintf(out, "  解码错误: %v\n", e)
	}
	fmt.Fprintln(out)
}

// printFrameJSON JSON形式输出一帧
func printFrameJSON(out io.Writer, frame *protocol.Frame) error {
	type point struct {
		Code  string      `json:"code"`
		Name  string      `json:"name"`
		Value interface{} `json:"value"`
		Unit  string      `json:"unit"`
	}
	o := struct {
		FrameID string  `json:"frameId"`
		Source  string  `json:"source"`
		Points  []point `json:"points"`
	}{FrameID: frame.FrameID, Source: frame.Source}
	for _, dp := range frame.DataPoints {
		o.Points = append(o.Points, point{dp.SymbolCode, dp.SymbolName, dp.Parsed.Interface(), dp.Unit.String()})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	file := fs.String("file", "", "从文件读取数据")
	ff := addFrameFlags(fs)
	fs.Parse(args)

	data, err := readInput(*file, fs.Args())
	if err != nil {
		return err
	}
	if err := ff.prepare(); err != nil {
		return err
	}
	defer ff.closeFn()

	source := "stdin"
	if *file != "" {
		source = "file://" + *file
	}

	for _, res := range protocol.DecodeStream(data, source, ff.options()) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "流错误: %v\n", res.Err)
			continue
		}
		if err := ff.emit(res.Frame); err != nil {
			return err
		}
	}
	return nil
}

func cmdConvert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("用法: witskit convert <数值> <源单位> <目标单位>")
	}
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("无效数值 %q", args[0])
	}
	from, ok := units.ParseUnit(args[1])
	if !ok {
		return fmt.Errorf("未知单位 %q", args[1])
	}
	to, ok := units.ParseUnit(args[2])
	if !ok {
		return fmt.Errorf("未知单位 %q", args[2])
	}
	converted, err := units.Convert(value, from, to)
	if err != nil {
		return err
	}
	fmt.Printf("%g %s = %g %s\n", value, from, converted, to)
	return nil
}

func cmdSymbols(args []string) error {
	fs := flag.NewFlagSet("symbols", flag.ExitOnError)
	record := fs.Int("record", 0, "只显示指定记录类型")
	search := fs.String("search", "", "按名称/描述搜索")
	listRecords := fs.Bool("list-records", false, "列出记录类型而非符号")
	fs.Parse(args)

	registry := symbols.Default()

	if *listRecords {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "记录\t类别\t描述\t符号数")
		for _, rt := range registry.RecordTypes() {
			fmt.Fprintf(w, "%02d\t%s\t%s\t%d\n",
				rt, symbols.RecordCategory(rt), symbols.RecordDescription(rt), len(registry.ByRecordType(rt)))
		}
		return w.Flush()
	}

	var defs []*symbols.SymbolDefinition
	switch {
	case *search != "":
		defs = registry.Search(*search, true)
	case *record > 0:
		defs = registry.ByRecordType(*record)
	default:
		for _, rt := range registry.RecordTypes() {
			defs = append(defs, registry.ByRecordType(rt)...)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "代码\t名称\t类型\t公制\t英制\t描述")
	for _, def := range defs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			def.Code, def.Name, def.DataType, def.MetricUnit, def.FPSUnit, def.Description)
	}
	w.Flush()
	fmt.Printf("共%d个符号\n", len(defs))
	return nil
}

func cmdValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "从文件读取数据")
	fs.Parse(args)

	data, err := readInput(*file, fs.Args())
	if err != nil {
		return err
	}

	frames := protocol.SplitFrames(data)
	if len(frames) == 0 {
		return fmt.Errorf("输入中没有完整帧")
	}
	for i, frameText := range frames {
		if err := protocol.ValidateFrame(frameText); err != nil {
			fmt.Printf("帧%d: 无效 (%v)\n", i+1, err)
		} else {
			fmt.Printf("帧%d: 有效\n", i+1)
		}
	}
	return nil
}

func cmdStream(args []string) error {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	maxFrames := fs.Int("max-frames", 0, "收到N帧后退出，0为不限")
	ff := addFrameFlags(fs)
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("用法: witskit stream [选项] <来源URL>")
	}
	sourceURL := fs.Arg(0)

	if err := ff.prepare(); err != nil {
		return err
	}
	defer ff.closeFn()

	reader, err := transport.Open(sourceURL)
	if err != nil {
		return err
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl+C退出
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	chunks, err := reader.Stream(ctx)
	if err != nil {
		return err
	}

	p := protocol.NewPipeline(sourceURL, ff.options())
	count := 0
	for res := range p.Run(ctx, chunks) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "流错误: %v\n", res.Err)
			continue
		}
		if err := ff.emit(res.Frame); err != nil {
			return err
		}
		count++
		if *maxFrames > 0 && count >= *maxFrames {
			cancel()
			break
		}
	}
	fmt.Printf("共解码%d帧\n", count)
	return nil
}

func cmdDemo() error {
	fmt.Println("== 演示：解码内置样例数据(公制) ==")
	opts := protocol.Options{UnitSystem: protocol.UnitSystemMetric}
	for _, res := range protocol.DecodeStream(demoData, "demo", opts) {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "流错误: %v\n", res.Err)
			continue
		}
		printFrame(os.Stdout, res.Frame)
	}

	fmt.Println("== 演示：单位转换 ==")
	depth, _ := units.Convert(3650.40, units.Meters, units.Feet)
	fmt.Printf("3650.40 M = %.2f F\n", depth)
	rop, _ := units.Convert(23.38, units.MetersPerHour, units.FeetPerHour)
	fmt.Printf("23.38 MHR = %.2f FHR\n", rop)
	return nil
}
