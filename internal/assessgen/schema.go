package assessgen

import "github.com/FHQ-Lab/Buatsoalujian-ai/internal/llm"

// AssessmentSchema defines the JSON schema for LLM assessment responses.
var AssessmentSchema = &llm.Schema{
	Name:        "assessment",
	Description: "A complete Indonesian exam package: questions, answer keys, curriculum grid, and scoring rubric",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Judul Ujian/Assessment",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Ringkasan singkat materi (maks 2 paragraf)",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"number": map[string]any{"type": "integer"},
						"text":   map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"pilihan_ganda", "esai"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Array of option texts only. DO NOT include A/B/C prefixes.",
						},
					},
					"required": []any{"number", "text", "type"},
				},
			},
			"answerKeys": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionNumber": map[string]any{"type": "integer"},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct answer (e.g., 'A' or the essay answer)",
						},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"questionNumber", "answer", "explanation"},
				},
			},
			"grid": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"basicCompetency": map[string]any{
							"type":        "string",
							"description": "Kompetensi Dasar",
						},
						"material": map[string]any{
							"type":        "string",
							"description": "Materi Pokok",
						},
						"indicator": map[string]any{
							"type":        "string",
							"description": "Indikator Soal",
						},
						"questionNumber": map[string]any{"type": "integer"},
						"cognitiveLevel": map[string]any{
							"type":        "string",
							"description": "Level Kognitif (e.g., C1, C2, C3, C4, C5, C6)",
						},
						"questionForm": map[string]any{
							"type":        "string",
							"description": "Bentuk Soal",
						},
					},
					"required": []any{"basicCompetency", "material", "indicator", "questionNumber", "cognitiveLevel", "questionForm"},
				},
			},
			"rubric": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionNumber": map[string]any{
							"type":        "integer",
							"description": "Number reference or 0 for general rubric",
						},
						"criteria": map[string]any{"type": "string"},
						"maxScore": map[string]any{"type": "integer"},
						"levels": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"score":       map[string]any{"type": "integer"},
									"description": map[string]any{"type": "string"},
								},
								"required": []any{"score", "description"},
							},
						},
					},
					"required": []any{"criteria", "maxScore", "levels"},
				},
			},
		},
		"required": []any{"title", "summary", "questions", "answerKeys", "grid", "rubric"},
	},
}
