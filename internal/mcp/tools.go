package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func idProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"minLength":   1,
		"description": description,
	}
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "recommend_professors",
		Description: "Rank professors whose research interests overlap with a student's. Scores are 1-100; professors with no overlap are omitted.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"student_id": idProperty("ID of the student asking for recommendations"),
			},
			"required": []string{"student_id"},
		},
	},
	{
		Name:        "find_research_partners",
		Description: "Rank fellow students as research partners. Same department adds 30 points and shared interests add up to 70.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"student_id": idProperty("ID of the student looking for partners"),
			},
			"required": []string{"student_id"},
		},
	},
	{
		Name:        "recommend_students",
		Description: "Rank students whose research interests overlap with a professor's.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"professor_id": idProperty("ID of the professor"),
			},
			"required": []string{"professor_id"},
		},
	},
	{
		Name:        "send_collaboration_request",
		Description: "Send a collaboration request from a student to a professor. A declined or cancelled request is reopened.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"student_id":   idProperty("ID of the requesting student"),
				"professor_id": idProperty("ID of the professor"),
				"message": map[string]interface{}{
					"type":        "string",
					"description": "Optional note to the professor",
				},
			},
			"required": []string{"student_id", "professor_id"},
		},
	},
	{
		Name:        "list_forum_posts",
		Description: "List discussion forum posts, newest first or by net votes.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Only posts in this category",
				},
				"sort": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"latest", "popular"},
					"description": "Ordering (default: latest)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"minimum":     1,
					"description": "Maximum number of posts (default: forum.page_size)",
				},
			},
		},
	},
	{
		Name:        "search_highlights",
		Description: "Search research highlights by keyword over title, summary and contributors.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Keyword to search for. Omit to list recent highlights.",
				},
				"featured_only": map[string]interface{}{
					"type":        "boolean",
					"description": "Only featured highlights (ignored when query is set)",
				},
				"limit": map[string]interface{}{
					"type":    "integer",
					"minimum": 1,
				},
			},
		},
	},
	{
		Name:        "search_users",
		Description: "Search the directory by keyword in research interests or bio, optionally by role and department.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Keyword to match against research interests and bio",
				},
				"role": map[string]interface{}{
					"type": "string",
					"enum": []string{"student", "professor", "admin"},
				},
				"department": map[string]interface{}{
					"type":        "string",
					"description": "Exact department name",
				},
			},
		},
	},
}
