package main

import (
	"os"

	"github.com/MKhiriev/go-nexus-keeper/cmd/nexusctl/cmd"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	err := cmd.Execute(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)))
	os.Exit(cmd.ExitCode(err))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
