package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Cooperative Office API",
        "description": "Administrative backend for the cooperative office site",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin session management"},
        {"name": "Admins", "description": "Administrator accounts"},
        {"name": "Documents", "description": "Notices, forms and announcements"},
        {"name": "Tenders", "description": "Published tenders"},
        {"name": "Credentials", "description": "Contractor submissions"},
        {"name": "Gallery", "description": "Public image gallery"},
        {"name": "Visitors", "description": "Visit counters"},
        {"name": "Contact", "description": "Contact form relay"},
        {"name": "Reports", "description": "Administrative PDF reports"}
    ],
    "paths": {
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["Auth"],
                "summary": "Clear the session cookie",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/registerAdmin": {
            "post": {
                "tags": ["Admins"],
                "summary": "Register a new admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterAdminRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/admins": {
            "get": {
                "tags": ["Admins"],
                "summary": "List all admins",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/deleteAdmin/{id}": {
            "delete": {
                "tags": ["Admins"],
                "summary": "Delete an admin",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/addPdf": {
            "post": {
                "tags": ["Documents"],
                "summary": "Publish a document",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "type", "in": "formData", "required": true, "type": "string", "enum": ["Form", "Announcement"]},
                    {"name": "date", "in": "formData", "required": true, "type": "string"},
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "file", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/getAllPdf": {
            "get": {
                "tags": ["Documents"],
                "summary": "List all documents",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/getAllForm": {
            "get": {
                "tags": ["Documents"],
                "summary": "List published forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/getAllAnnouncement": {
            "get": {
                "tags": ["Documents"],
                "summary": "List announcements by display date",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/downloadpdf/{pdfId}": {
            "get": {
                "tags": ["Documents"],
                "summary": "Get a signed download URL",
                "parameters": [
                    {"name": "pdfId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/deletePdf/{id}": {
            "delete": {
                "tags": ["Documents"],
                "summary": "Delete a document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/createTender": {
            "post": {
                "tags": ["Tenders"],
                "summary": "Publish a tender",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "closingDate", "in": "formData", "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/getAllTenders": {
            "get": {
                "tags": ["Tenders"],
                "summary": "List tenders",
                "parameters": [
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/singleTender/{id}": {
            "get": {
                "tags": ["Tenders"],
                "summary": "Get a single tender",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/downloadTender/{tenderId}": {
            "get": {
                "tags": ["Tenders"],
                "summary": "Get a signed download URL",
                "parameters": [
                    {"name": "tenderId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/deleteTender/{id}": {
            "delete": {
                "tags": ["Tenders"],
                "summary": "Delete a tender",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/submitCredential/{tenderId}": {
            "post": {
                "tags": ["Credentials"],
                "summary": "Submit contractor credentials",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "tenderId", "in": "path", "required": true, "type": "string"},
                    {"name": "contractorName", "in": "formData", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Submission period ended"}
                }
            }
        },
        "/getAllcredential/{tenderId}": {
            "get": {
                "tags": ["Credentials"],
                "summary": "List submissions for a closed tender",
                "parameters": [
                    {"name": "tenderId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Tender still open"}
                }
            }
        },
        "/downloadCredential/{id}": {
            "get": {
                "tags": ["Credentials"],
                "summary": "Get a signed download URL",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/deleteCredential/{id}": {
            "delete": {
                "tags": ["Credentials"],
                "summary": "Delete a submission",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/addImage": {
            "post": {
                "tags": ["Gallery"],
                "summary": "Upload a gallery image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "description", "in": "formData", "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/images": {
            "get": {
                "tags": ["Gallery"],
                "summary": "List gallery images",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No gallery images found"}
                }
            }
        },
        "/deleteImage/{id}": {
            "delete": {
                "tags": ["Gallery"],
                "summary": "Delete a gallery image",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/trackVisitor": {
            "post": {
                "tags": ["Visitors"],
                "summary": "Record a site visit",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/getVisitor": {
            "get": {
                "tags": ["Visitors"],
                "summary": "Daily and monthly visit counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/totalVisitCount": {
            "get": {
                "tags": ["Visitors"],
                "summary": "All-time visit count",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sendSms": {
            "post": {
                "tags": ["Contact"],
                "summary": "Relay a contact enquiry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Relay failed or not configured"}
                }
            }
        },
        "/reports/tenders": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download the tender register as PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF stream"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "RegisterAdminRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["name", "email", "password"]
        },
        "ContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "phoneNo": {"type": "string"},
                "whatsappNo": {"type": "string"},
                "message": {"type": "string", "maxLength": 1000}
            },
            "required": ["name", "email", "subject", "phoneNo", "whatsappNo", "message"]
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {"type": "object"},
                "count": {"type": "integer"},
                "total": {"type": "integer"},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"}
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
