package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduSphere API",
        "description": "School management API backed by a local snapshot store",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Role-selection sessions"},
        {"name": "Students", "description": "Student roster"},
        {"name": "Teachers", "description": "Staff roster"},
        {"name": "Attendance", "description": "Daily attendance sheets"},
        {"name": "Fees", "description": "Fee ledger"},
        {"name": "Schedule", "description": "Class timetable"},
        {"name": "Notices", "description": "Notice board"},
        {"name": "Dashboard", "description": "Derived statistics and assistant"},
        {"name": "Exports", "description": "CSV/PDF exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Start a session for a role",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Session user and access token"},
                    "400": {"description": "Unknown role"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the current session",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current session identity",
                "responses": {
                    "200": {"description": "Session user"},
                    "401": {"description": "No active session"}
                }
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {"200": {"description": "Roster in insertion order"}}
            },
            "post": {
                "tags": ["Students"],
                "summary": "Enroll a student",
                "responses": {
                    "201": {"description": "Created student with store-assigned id"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {"200": {"description": "Roster in insertion order"}}
            },
            "post": {
                "tags": ["Teachers"],
                "summary": "Add a teacher",
                "responses": {
                    "201": {"description": "Created teacher with store-assigned id"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "description": "Narrow to one date"}
                ],
                "responses": {"200": {"description": "Records"}}
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Submit an attendance sheet",
                "description": "Merge-by-replace on (person, date); resubmission is idempotent",
                "responses": {
                    "200": {"description": "Written records"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/attendance/analyze": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Ask the assistant for attendance trends",
                "responses": {"200": {"description": "Always success-shaped text"}}
            }
        },
        "/fees": {
            "get": {
                "tags": ["Fees"],
                "summary": "List fee records",
                "responses": {"200": {"description": "Ledger in insertion order"}}
            }
        },
        "/fees/{id}/status": {
            "patch": {
                "tags": ["Fees"],
                "summary": "Update a fee record's payment state",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Updated record"},
                    "404": {"description": "Unknown fee id"}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List class sessions",
                "responses": {"200": {"description": "Timetable"}}
            }
        },
        "/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List notices, newest first",
                "responses": {"200": {"description": "Board"}}
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Post a notice",
                "responses": {
                    "201": {"description": "Created notice at the top of the board"},
                    "400": {"description": "Invalid payload"}
                }
            }
        },
        "/dashboard/stats": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard statistics",
                "responses": {"200": {"description": "Recomputed aggregates"}}
            }
        },
        "/dashboard/assist": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Ask the administrative assistant",
                "responses": {"200": {"description": "Always success-shaped text"}}
            }
        },
        "/export/students": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the student roster",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {"200": {"description": "Rendered document"}}
            }
        },
        "/export/fees": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the fee ledger",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "description": "csv (default) or pdf"}
                ],
                "responses": {"200": {"description": "Rendered document"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "role": {"type": "string", "enum": ["ADMIN", "TEACHER", "STUDENT", "PARENT"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
