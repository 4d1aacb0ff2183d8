package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "research://summary",
		Name:        "Directory Summary",
		Description: "User, request, forum, highlight and project counts",
		MimeType:    "text/plain",
	},
	{
		URI:         "research://highlights",
		Name:        "Featured Highlights",
		Description: "Research highlights marked as featured, newest first",
		MimeType:    "text/plain",
	},
	{
		URI:         "research://departments",
		Name:        "Departments",
		Description: "Every department with at least one registered user",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
