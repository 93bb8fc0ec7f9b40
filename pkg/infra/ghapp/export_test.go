package ghapp

var (
	StepDownDirectory = stepDownDirectory
	ExtractZipFile    = extractZipFile
	MeasureWorkspace  = measureWorkspace
)
