package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"time"
)

// WITS数据源模拟器：连接网关并周期性推送钻井实时帧，
// 深度缓慢增加，钻速与立管压力做随机摆动
var (
	serverAddr = flag.String("server", "localhost:8686", "网关TCP地址")
	interval   = flag.Duration("interval", time.Second, "发帧间隔")
	frameCount = flag.Int("frames", 0, "发送帧数，0为不限")
	chunked    = flag.Bool("chunked", false, "把帧拆成小块发送，模拟TCP分包")
	wellID     = flag.String("well", "SIM-WELL-01", "井标识")
)

func main() {
	flag.Parse()

	conn, err := net.DialTimeout("tcp", *serverAddr, 10*time.Second)
	if err != nil {
		fmt.Printf("连接网关失败: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("已连接网关 %s，开始推送WITS帧\n", *serverAddr)

	depth := 3650.40
	rop := 23.38
	pressure := 12500.0

	for i := 0; *frameCount == 0 || i < *frameCount; i++ {
		rop += (rand.Float64() - 0.5) * 2.0
		if rop < 5 {
			rop = 5
		}
		depth += rop / 3600.0 * interval.Seconds()
		pressure += (rand.Float64() - 0.5) * 200.0

		now := time.Now()
		frame := fmt.Sprintf("&&\r\n0101%s\r\n0103%s\r\n0104%s\r\n0108%.2f\r\n0113%.2f\r\n0121%.1f\r\n!!\r\n",
			*wellID,
			now.Format("060102"),
			now.Format("150405"),
			depth, rop, pressure)

		if err := send(conn, frame, *chunked); err != nil {
			fmt.Printf("发送失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("帧%d: 井深=%.2fm 钻速=%.2fm/h 立管压力=%.1fkPa\n", i+1, depth, rop, pressure)

		time.Sleep(*interval)
	}
	fmt.Println("推送完成")
}

// send 整帧或按小块写出
func send(conn net.Conn, frame string, chunked bool) error {
	if !chunked {
		_, err := conn.Write([]byte(frame))
		return err
	}
	// 7字节一块，强制跨块帧边界
	for i := 0; i < len(frame); i += 7 {
		end := i + 7
		if end > len(frame) {
			end = len(frame)
		}
		if _, err := conn.Write([]byte(frame[i:end])); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}
