// Package schemas embeds the JSON Schemas that describe the documents the analyzer
// accepts from outside the process.
package schemas

import "embed"

// Schema file names.
const (
	CompanyProfile = "company_profile.schema.json"
	ResumeRequest  = "resume_request.schema.json"
)

// Files holds every schema in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// Names lists the embedded schema files.
var Names = []string{CompanyProfile, ResumeRequest}
