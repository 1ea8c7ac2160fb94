// Package api describes the JSON contract of the documents service. It is
// shared by the client request layer and the development backend.
//
// Every response is wrapped in an Envelope. A zero ErrorCode means success;
// Data then carries the payload of the call.
package api

// Paths relative to the service base path.
const (
	PathLogin          = "/login"
	PathListDocuments  = "/userdocs/get"
	PathCreateDocument = "/userdocs/create"
	PathUpdateDocument = "/userdocs/set/"
	PathDeleteDocument = "/userdocs/delete/"
)

// Error codes used in Envelope.ErrorCode.
const (
	ErrorCodeOK           = 0
	ErrorCodeAccessDenied = 2004
	ErrorCodeNotFound     = 2005
	ErrorCodeBadRequest   = 2006
)

// Envelope is the {error_code, error_text, data} wrapper of every response.
type Envelope[T any] struct {
	ErrorCode int    `json:"error_code"`
	ErrorText string `json:"error_text,omitempty"`
	Data      T      `json:"data"`
}

// LoginRequest is the body of the login call.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string `json:"token"`
}

// DocumentFields holds every document attribute except the id. It is the
// body of the create and update calls.
type DocumentFields struct {
	CompanySigDate        string `json:"companySigDate"`
	CompanySignatureName  string `json:"companySignatureName"`
	DocumentName          string `json:"documentName"`
	DocumentStatus        string `json:"documentStatus"`
	DocumentType          string `json:"documentType"`
	EmployeeNumber        string `json:"employeeNumber"`
	EmployeeSigDate       string `json:"employeeSigDate"`
	EmployeeSignatureName string `json:"employeeSignatureName"`
}

// Document is a stored record. ID is assigned by the server and never changes.
type Document struct {
	ID string `json:"id"`
	DocumentFields
}

// Fields returns the mutable part of the document.
func (d Document) Fields() DocumentFields {
	return d.DocumentFields
}
