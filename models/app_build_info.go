package models

// AppBuildInfo is the build metadata injected with -ldflags. Empty fields
// are reported as "N/A".
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

const unknownBuildField = "N/A"

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// String renders the info as printed on startup.
func (a AppBuildInfo) String() string {
	return "Build version: " + a.Version + "\nBuild date: " + a.Date + "\nBuild commit: " + a.Commit
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildField
	}
	return s
}
