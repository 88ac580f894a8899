package symbols

import "github.com/bujia-iot/iot-wits/pkg/units"

// catalog 内置WITS Level 0符号表，按记录类型分节整理
// 字段顺序: 代码, 符号名, 说明, 记录类型, 数据类型, 公制单位, 英制单位
var catalog = []SymbolDefinition{
	// ------------------------------------------------------------------
	// 记录01: General Time-Based (综合时间序列)
	// ------------------------------------------------------------------
	{"0101", "WELLID", "Well Identifier", 1, TypeAscii, units.Unitless, units.Unitless},
	{"0102", "SKNO", "Sidetrack/Hole Sect Number", 1, TypeShort, units.Unitless, units.Unitless},
	{"0103", "DATE", "Date (YYMMDD)", 1, TypeLong, units.Unitless, units.Unitless},
	{"0104", "TIME", "Time (HHMMSS)", 1, TypeLong, units.Unitless, units.Unitless},
	{"0105", "ACTC", "Activity Code", 1, TypeShort, units.Unitless, units.Unitless},
	{"0106", "SPR1", "Spare 1", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0107", "SPR2", "Spare 2", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0108", "DBTM", "Depth Bit (meas)", 1, TypeFloat, units.Meters, units.Feet},
	{"0109", "DBTV", "Depth Bit (vert)", 1, TypeFloat, units.Meters, units.Feet},
	{"0110", "DMEA", "Depth Hole (meas)", 1, TypeFloat, units.Meters, units.Feet},
	{"0111", "DVER", "Depth Hole (vert)", 1, TypeFloat, units.Meters, units.Feet},
	{"0112", "BLKP", "Block Position", 1, TypeFloat, units.Meters, units.Feet},
	{"0113", "ROPA", "Rate of Penetration (avg)", 1, TypeFloat, units.MetersPerHour, units.FeetPerHour},
	{"0114", "HKLA", "Hookload (avg)", 1, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0115", "HKLX", "Hookload (max)", 1, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0116", "WOBA", "Weight on Bit (avg)", 1, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0117", "WOBX", "Weight on Bit (max)", 1, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0118", "TQA", "Rotary Torque (avg)", 1, TypeFloat, units.KiloNewtonMeters, units.KiloFootPounds},
	{"0119", "TQX", "Rotary Torque (max)", 1, TypeFloat, units.KiloNewtonMeters, units.KiloFootPounds},
	{"0120", "RPMA", "Rotary Speed (avg)", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0121", "SPPA", "Standpipe Pressure (avg)", 1, TypeFloat, units.Kilopascals, units.Psi},
	{"0122", "CHKP", "Casing (Choke) Pressure", 1, TypeFloat, units.Kilopascals, units.Psi},
	{"0123", "SPM1", "Pump Stroke Rate 1", 1, TypeShort, units.Unitless, units.Unitless},
	{"0124", "SPM2", "Pump Stroke Rate 2", 1, TypeShort, units.Unitless, units.Unitless},
	{"0125", "SPM3", "Pump Stroke Rate 3", 1, TypeShort, units.Unitless, units.Unitless},
	{"0126", "TVA", "Tank Volume (active)", 1, TypeFloat, units.CubicMeters, units.Barrels},
	{"0127", "TVCA", "Tank Volume Change (active)", 1, TypeFloat, units.CubicMeters, units.Barrels},
	{"0128", "MFOA", "Mud Flow Out (avg)", 1, TypeFloat, units.LitersPerMinute, units.GallonsPerMinute},
	{"0129", "MFIA", "Mud Flow In (avg)", 1, TypeFloat, units.LitersPerMinute, units.GallonsPerMinute},
	{"0130", "MDOA", "Mud Density Out (avg)", 1, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"0131", "MDIA", "Mud Density In (avg)", 1, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"0132", "MTOA", "Mud Temperature Out (avg)", 1, TypeFloat, units.DegreesC, units.DegreesF},
	{"0133", "MTIA", "Mud Temperature In (avg)", 1, TypeFloat, units.DegreesC, units.DegreesF},
	{"0134", "MCOA", "Mud Conductivity Out (avg)", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0135", "MCIA", "Mud Conductivity In (avg)", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0136", "STKC", "Pump Stroke Count (cum)", 1, TypeLong, units.Unitless, units.Unitless},
	{"0137", "LAGS", "Lag Strokes", 1, TypeLong, units.Unitless, units.Unitless},
	{"0138", "DPRL", "Depth Returns (lagged)", 1, TypeFloat, units.Meters, units.Feet},
	{"0139", "GASA", "Gas (avg)", 1, TypeFloat, units.Unitless, units.Unitless},
	{"0140", "SPR3", "Spare 3", 1, TypeFloat, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录02: Drilling - Depth-Based (钻进深度序列)
	// ------------------------------------------------------------------
	{"0201", "WELLID", "Well Identifier", 2, TypeAscii, units.Unitless, units.Unitless},
	{"0202", "SKNO", "Sidetrack/Hole Sect Number", 2, TypeShort, units.Unitless, units.Unitless},
	{"0203", "DATE", "Date (YYMMDD)", 2, TypeLong, units.Unitless, units.Unitless},
	{"0204", "TIME", "Time (HHMMSS)", 2, TypeLong, units.Unitless, units.Unitless},
	{"0205", "ACTC", "Activity Code", 2, TypeShort, units.Unitless, units.Unitless},
	{"0208", "DMEA", "Depth Hole (meas)", 2, TypeFloat, units.Meters, units.Feet},
	{"0209", "DVER", "Depth Hole (vert)", 2, TypeFloat, units.Meters, units.Feet},
	{"0210", "DRTM", "Drilling Time (interval)", 2, TypeFloat, units.Unitless, units.Unitless},
	{"0211", "ROPI", "Rate of Penetration (interval)", 2, TypeFloat, units.MetersPerHour, units.FeetPerHour},
	{"0212", "WOBI", "Weight on Bit (interval avg)", 2, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0213", "TQI", "Rotary Torque (interval avg)", 2, TypeFloat, units.KiloNewtonMeters, units.KiloFootPounds},
	{"0214", "RPMI", "Rotary Speed (interval avg)", 2, TypeFloat, units.Unitless, units.Unitless},
	{"0215", "SPPI", "Standpipe Pressure (interval avg)", 2, TypeFloat, units.Kilopascals, units.Psi},
	{"0216", "MFII", "Mud Flow In (interval avg)", 2, TypeFloat, units.LitersPerMinute, units.GallonsPerMinute},
	{"0217", "MDII", "Mud Density In (interval avg)", 2, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"0218", "DXC", "Corrected D-Exponent", 2, TypeFloat, units.Unitless, units.Unitless},
	{"0219", "HKLI", "Hookload (interval avg)", 2, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0220", "GASI", "Gas (interval avg)", 2, TypeFloat, units.Unitless, units.Unitless},
	{"0221", "SPR1", "Spare 1", 2, TypeFloat, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录03: Drilling - Connections (接单根)
	// ------------------------------------------------------------------
	{"0301", "WELLID", "Well Identifier", 3, TypeAscii, units.Unitless, units.Unitless},
	{"0302", "SKNO", "Sidetrack/Hole Sect Number", 3, TypeShort, units.Unitless, units.Unitless},
	{"0303", "DATE", "Date (YYMMDD)", 3, TypeLong, units.Unitless, units.Unitless},
	{"0304", "TIME", "Time (HHMMSS)", 3, TypeLong, units.Unitless, units.Unitless},
	{"0308", "CDMEA", "Depth at Connection (meas)", 3, TypeFloat, units.Meters, units.Feet},
	{"0309", "CTIMB", "Time Bottom to Slips", 3, TypeFloat, units.Unitless, units.Unitless},
	{"0310", "CTIMS", "Time in Slips", 3, TypeFloat, units.Unitless, units.Unitless},
	{"0311", "CTIMR", "Time Slips to Bottom", 3, TypeFloat, units.Unitless, units.Unitless},
	{"0312", "CHKLB", "Hookload Before Connection", 3, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0313", "CHKLA", "Hookload After Connection", 3, TypeFloat, units.KiloDecaNewtons, units.KiloPounds},
	{"0314", "CSTND", "Stand/Joint Number", 3, TypeLong, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录04: Hydraulics (水力参数)
	// ------------------------------------------------------------------
	{"0401", "WELLID", "Well Identifier", 4, TypeAscii, units.Unitless, units.Unitless},
	{"0402", "SKNO", "Sidetrack/Hole Sect Number", 4, TypeShort, units.Unitless, units.Unitless},
	{"0403", "DATE", "Date (YYMMDD)", 4, TypeLong, units.Unitless, units.Unitless},
	{"0404", "TIME", "Time (HHMMSS)", 4, TypeLong, units.Unitless, units.Unitless},
	{"0408", "DMEA", "Depth Hole (meas)", 4, TypeFloat, units.Meters, units.Feet},
	{"0409", "BITNZ", "Bit Nozzle Velocity", 4, TypeFloat, units.Unitless, units.Unitless},
	{"0410", "BITPL", "Bit Pressure Loss", 4, TypeFloat, units.Kilopascals, units.Psi},
	{"0411", "ANNPL", "Annular Pressure Loss", 4, TypeFloat, units.Kilopascals, units.Psi},
	{"0412", "ANNVL", "Annular Velocity (min)", 4, TypeFloat, units.Unitless, units.Unitless},
	{"0413", "ECDT", "Equivalent Circulating Density (TD)", 4, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"0414", "PMPP", "Pump Pressure (calc)", 4, TypeFloat, units.Kilopascals, units.Psi},
	{"0415", "HYDPW", "Hydraulic Power at Bit", 4, TypeFloat, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录07: Survey / Directional (测斜)
	// ------------------------------------------------------------------
	{"0701", "WELLID", "Well Identifier", 7, TypeAscii, units.Unitless, units.Unitless},
	{"0702", "SKNO", "Sidetrack/Hole Sect Number", 7, TypeShort, units.Unitless, units.Unitless},
	{"0703", "DATE", "Date (YYMMDD)", 7, TypeLong, units.Unitless, units.Unitless},
	{"0704", "TIME", "Time (HHMMSS)", 7, TypeLong, units.Unitless, units.Unitless},
	{"0708", "SVYMD", "Survey Depth (meas)", 7, TypeFloat, units.Meters, units.Feet},
	{"0709", "SVYTVD", "Survey Depth (vert)", 7, TypeFloat, units.Meters, units.Feet},
	{"0710", "SVYINC", "Survey Inclination", 7, TypeFloat, units.Unitless, units.Unitless},
	{"0711", "SVYAZU", "Survey Azimuth (uncorr)", 7, TypeFloat, units.Unitless, units.Unitless},
	{"0712", "SVYAZC", "Survey Azimuth (corr)", 7, TypeFloat, units.Unitless, units.Unitless},
	{"0713", "SVYNS", "North/South Coordinate", 7, TypeFloat, units.Meters, units.Feet},
	{"0714", "SVYEW", "East/West Coordinate", 7, TypeFloat, units.Meters, units.Feet},
	{"0715", "SVYDLS", "Dogleg Severity", 7, TypeFloat, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录08: MWD - Formation Evaluation (随钻地层评价)
	// ------------------------------------------------------------------
	{"0801", "WELLID", "Well Identifier", 8, TypeAscii, units.Unitless, units.Unitless},
	{"0802", "SKNO", "Sidetrack/Hole Sect Number", 8, TypeShort, units.Unitless, units.Unitless},
	{"0803", "DATE", "Date (YYMMDD)", 8, TypeLong, units.Unitless, units.Unitless},
	{"0804", "TIME", "Time (HHMMSS)", 8, TypeLong, units.Unitless, units.Unitless},
	{"0808", "MDBTM", "Depth Bit (meas)", 8, TypeFloat, units.Meters, units.Feet},
	{"0809", "MSDPT", "Sensor Depth (meas)", 8, TypeFloat, units.Meters, units.Feet},
	{"0810", "MGRA", "Gamma Ray", 8, TypeFloat, units.Unitless, units.Unitless},
	{"0811", "MRES", "Resistivity", 8, TypeFloat, units.Unitless, units.Unitless},
	{"0812", "MPOR", "Porosity", 8, TypeFloat, units.Unitless, units.Unitless},
	{"0813", "MDEN", "Formation Density", 8, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"0814", "MTMP", "Downhole Temperature", 8, TypeFloat, units.DegreesC, units.DegreesF},
	{"0815", "MTF", "Tool Face", 8, TypeFloat, units.Unitless, units.Unitless},
	{"0816", "MVIB", "Vibration Level", 8, TypeShort, units.Unitless, units.Unitless},
	{"0817", "MSIG", "Signal Quality", 8, TypeShort, units.Unitless, units.Unitless},
	{"0818", "MTOOL", "Tool Identifier", 8, TypeAscii, units.Unitless, units.Unitless},

	// ------------------------------------------------------------------
	// 记录10: Pressure Evaluation (压力评价)
	// ------------------------------------------------------------------
	{"1001", "WELLID", "Well Identifier", 10, TypeAscii, units.Unitless, units.Unitless},
	{"1002", "SKNO", "Sidetrack/Hole Sect Number", 10, TypeShort, units.Unitless, units.Unitless},
	{"1003", "DATE", "Date (YYMMDD)", 10, TypeLong, units.Unitless, units.Unitless},
	{"1004", "TIME", "Time (HHMMSS)", 10, TypeLong, units.Unitless, units.Unitless},
	{"1008", "PDMEA", "Depth (meas)", 10, TypeFloat, units.Meters, units.Feet},
	{"1009", "PPFG", "Pore Pressure Gradient", 10, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"1010", "PFFG", "Fracture Pressure Gradient", 10, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"1011", "POBG", "Overburden Gradient", 10, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"1012", "PKMW", "Kick Mud Weight", 10, TypeFloat, units.KilogramsPerCubicMeter, units.PoundsPerGallon},
	{"1013", "PSIDPP", "Shut-in Drillpipe Pressure", 10, TypeFloat, units.Kilopascals, units.Psi},

	// ------------------------------------------------------------------
	// 记录11: Mud Tank Volumes (泥浆罐体积)
	// ------------------------------------------------------------------
	{"1101", "WELLID", "Well Identifier", 11, TypeAscii, units.Unitless, units.Unitless},
	{"1102", "SKNO", "Sidetrack/Hole Sect Number", 11, TypeShort, units.Unitless, units.Unitless},
	{"1103", "DATE", "Date (YYMMDD)", 11, TypeLong, units.Unitless, units.Unitless},
	{"1104", "TIME", "Time (HHMMSS)", 11, TypeLong, units.Unitless, units.Unitless},
	{"1108", "TV1", "Tank Volume 1", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1109", "TV2", "Tank Volume 2", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1110", "TV3", "Tank Volume 3", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1111", "TV4", "Tank Volume 4", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1112", "TV5", "Tank Volume 5", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1113", "TV6", "Tank Volume 6", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1114", "TV7", "Tank Volume 7", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1115", "TV8", "Tank Volume 8", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1116", "TVT", "Tank Volume (total)", 11, TypeFloat, units.CubicMeters, units.Barrels},
	{"1117", "TTRIP", "Trip Tank Volume", 11, TypeFloat, units.CubicMeters, units.Barrels},

	// ------------------------------------------------------------------
	// 记录12: Chromatograph - Cycle-Based (色谱组分)
	// ------------------------------------------------------------------
	{"1201", "WELLID", "Well Identifier", 12, TypeAscii, units.Unitless, units.Unitless},
	{"1202", "SKNO", "Sidetrack/Hole Sect Number", 12, TypeShort, units.Unitless, units.Unitless},
	{"1203", "DATE", "Date (YYMMDD)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1204", "TIME", "Time (HHMMSS)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1208", "METH", "Methane C1 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1209", "ETH", "Ethane C2 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1210", "PROP", "Propane C3 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1211", "IBUT", "Iso-Butane IC4 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1212", "NBUT", "Nor-Butane NC4 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1213", "IPEN", "Iso-Pentane IC5 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1214", "NPEN", "Nor-Pentane NC5 (ppm)", 12, TypeLong, units.Unitless, units.Unitless},
	{"1215", "CYCLT", "Chromatograph Cycle Time", 12, TypeShort, units.Unitless, units.Unitless},
}
