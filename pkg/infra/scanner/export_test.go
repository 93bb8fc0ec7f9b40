package scanner

var (
	ParseSemgrepOutput  = parseSemgrepOutput
	ParseGitleaksOutput = parseGitleaksOutput
	ParseSeverity       = parseSeverity
)
