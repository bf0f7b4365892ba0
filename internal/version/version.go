package version

// Static build metadata. Update Version when making a release.
const (
	Service   = "employee-management"
	Version   = "0.1.0"
	Commit    = ""
	BuildTime = ""
)

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

func Get() Info {
	return Info{
		Service:   Service,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}
