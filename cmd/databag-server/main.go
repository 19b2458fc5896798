package main

import (
	"os"

	"github.com/MKhiriev/go-nexus-keeper/cmd/databag-server/cmd"
	"github.com/MKhiriev/go-nexus-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := cmd.Execute(models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))); err != nil {
		os.Exit(1)
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
