package api

// JSON names of the document attributes, in form order.
const (
	FieldDocumentName          = "documentName"
	FieldDocumentStatus        = "documentStatus"
	FieldDocumentType          = "documentType"
	FieldEmployeeNumber        = "employeeNumber"
	FieldEmployeeSigDate       = "employeeSigDate"
	FieldEmployeeSignatureName = "employeeSignatureName"
	FieldCompanySigDate        = "companySigDate"
	FieldCompanySignatureName  = "companySignatureName"
)

// FieldNames lists every attribute of DocumentFields in form order.
var FieldNames = []string{
	FieldDocumentName,
	FieldDocumentStatus,
	FieldDocumentType,
	FieldEmployeeNumber,
	FieldEmployeeSigDate,
	FieldEmployeeSignatureName,
	FieldCompanySigDate,
	FieldCompanySignatureName,
}

func (f *DocumentFields) ref(name string) *string {
	switch name {
	case FieldDocumentName:
		return &f.DocumentName
	case FieldDocumentStatus:
		return &f.DocumentStatus
	case FieldDocumentType:
		return &f.DocumentType
	case FieldEmployeeNumber:
		return &f.EmployeeNumber
	case FieldEmployeeSigDate:
		return &f.EmployeeSigDate
	case FieldEmployeeSignatureName:
		return &f.EmployeeSignatureName
	case FieldCompanySigDate:
		return &f.CompanySigDate
	case FieldCompanySignatureName:
		return &f.CompanySignatureName
	}
	return nil
}

// Value returns the attribute with the given JSON name, or "" for unknown
// names.
func (f DocumentFields) Value(name string) string {
	if p := f.ref(name); p != nil {
		return *p
	}
	return ""
}

// Set assigns the attribute with the given JSON name. It reports false for
// unknown names.
func (f *DocumentFields) Set(name, value string) bool {
	p := f.ref(name)
	if p == nil {
		return false
	}
	*p = value
	return true
}
