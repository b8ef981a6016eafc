// Package docs holds the Swagger 2.0 document served at /swagger. It mirrors
// the swag annotations on the relay handlers; keep both in sync.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/Transcribe/Azure": {
            "post": {
                "description": "Uploads the audio as multipart to the managed Whisper deployment; mimeType controls the file part (default audio/wav)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transcribe"],
                "summary": "Transcribe audio with an Azure Whisper deployment",
                "parameters": [
                    {
                        "description": "Base64 audio, prompt and MIME type",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TranscribeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TranscriptionResponse"}},
                    "400": {"description": "No audio data received", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "503": {"description": "Provider not configured", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/Transcribe/Gemini": {
            "post": {
                "description": "Sends the audio inline to the generative model together with the prompt and returns the model's content object",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transcribe"],
                "summary": "Summarize audio with Gemini",
                "parameters": [
                    {
                        "description": "Base64 audio and prompt",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TranscribeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SummaryResponse"}},
                    "400": {"description": "No audio data received", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "503": {"description": "Provider not configured", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/Transcribe/OpenAI": {
            "post": {
                "description": "Uploads the audio as audio.mp3 to the hosted Whisper endpoint",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transcribe"],
                "summary": "Transcribe audio with OpenAI Whisper",
                "parameters": [
                    {
                        "description": "Base64 audio and prompt",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TranscribeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TranscriptionResponse"}},
                    "400": {"description": "No audio data received", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "503": {"description": "Provider not configured", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports liveness and the configured providers",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "providers": {"type": "array", "items": {"type": "string"}, "example": ["azure", "gemini", "openai"]},
                "status": {"type": "string", "example": "ok"}
            }
        },
        "dto.SummaryResponse": {
            "type": "object",
            "properties": {
                "summary": {"type": "object"}
            }
        },
        "dto.TranscribeRequest": {
            "type": "object",
            "required": ["audio"],
            "properties": {
                "audio": {"type": "string", "example": "data:audio/mp3;base64,SUQzBAAAAAAAI1RTU0UAAAAPAAADTGF2ZjU4Ljc2LjEwMAAAAAAAAAAAAAAA"},
                "mimeType": {"type": "string", "example": "audio/wav"},
                "prompt": {"type": "string", "example": "Transcribe this meeting"}
            }
        },
        "dto.TranscriptionResponse": {
            "type": "object",
            "properties": {
                "transcription": {"type": "string", "example": "Hello and welcome to the meeting."}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Audio Relay API",
	Description:      "Relays base64 audio to Gemini, Azure Whisper or OpenAI Whisper and returns the text result.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
