package symbols

// recordDescriptions WITS记录类型说明(记录1-25)
var recordDescriptions = map[int]string{
	1:  "General Time-Based",
	2:  "Drilling - Depth-Based",
	3:  "Drilling - Connections",
	4:  "Hydraulics",
	5:  "Tripping - Connections",
	6:  "Tripping - Time-Based",
	7:  "Survey / Directional",
	8:  "MWD - Formation Evaluation",
	9:  "MWD - Mechanical",
	10: "Pressure Evaluation",
	11: "Mud Tank Volumes",
	12: "Chromatograph - Cycle-Based",
	13: "Chromatograph - Depth-Based",
	14: "Lagged Mud Properties",
	15: "Cuttings / Lithology",
	16: "Hydrocarbon Show",
	17: "Cementing",
	18: "Drill Stem Testing",
	19: "Configuration",
	20: "Mud Report",
	21: "Bit Report",
	22: "Remarks",
	23: "Well Identification",
	24: "Vessel Motion / Mooring Status",
	25: "Weather / Sea State",
}

// recordCategories 记录类型到业务分类的映射，CLI列表展示使用
var recordCategories = map[int]string{
	1: "Drilling", 2: "Drilling", 3: "Drilling", 4: "Drilling",
	5: "Tripping", 6: "Tripping",
	7:  "Surveying",
	8:  "MWD/LWD",
	9:  "MWD/LWD",
	10: "Evaluation", 12: "Evaluation", 13: "Evaluation",
	14: "Evaluation", 15: "Evaluation", 16: "Evaluation",
	11: "Operations", 17: "Operations", 18: "Operations",
	19: "Configuration", 20: "Configuration", 21: "Configuration",
	22: "Reporting", 23: "Reporting",
	24: "Marine", 25: "Marine",
}

// RecordDescription 返回记录类型的规范说明
func RecordDescription(recordType int) string {
	if desc, ok := recordDescriptions[recordType]; ok {
		return desc
	}
	return "Unknown"
}

// RecordCategory 返回记录类型的业务分类
func RecordCategory(recordType int) string {
	if cat, ok := recordCategories[recordType]; ok {
		return cat
	}
	return "Other"
}
