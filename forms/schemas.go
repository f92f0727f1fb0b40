package forms

import "law_office_app_go/models"

// Upload bounds shared by the file rules
const (
	MaxImageSize    = 5 * 1024 * 1024  // 5MB
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

var (
	imageExtensions    = []string{".jpg", ".jpeg", ".png"}
	documentExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png"}
)

// ClientSchema declares the client form
func ClientSchema() *Schema {
	return &Schema{
		Entity: "client",
		Fields: []FieldSpec{
			{Name: "fullname", Rules: []Rule{
				Required("Full name is required"),
				MinLen(3, "Full name must be at least 3 characters"),
			}},
			{Name: "email", Rules: []Rule{
				Required("Email is required"),
				Email("Enter a valid email address"),
			}},
			{Name: "phonenumber", Rules: []Rule{
				Required("Phone number is required"),
				Digits(10, "Phone number must be numeric with at least 10 digits"),
			}},
			{Name: "address", Rules: []Rule{
				Required("Address is required"),
			}},
			{Name: "picture", Optional: true, Rules: []Rule{
				FileMaxSize(MaxImageSize, "Image must be 5MB or smaller"),
				FileTypes(imageExtensions, "Image must be a JPG or PNG file"),
			}},
		},
	}
}

// CaseSchema declares the case form
func CaseSchema() *Schema {
	return &Schema{
		Entity: "case",
		Fields: []FieldSpec{
			{Name: "casenumber", Rules: []Rule{
				Required("Case number is required"),
			}},
			{Name: "casename", Rules: []Rule{
				Required("Case name is required"),
				MinLen(3, "Case name must be at least 3 characters"),
			}},
			{Name: "clientname", Rules: []Rule{
				Required("Client is required"),
			}},
			{Name: "attorneyname", Rules: []Rule{
				Required("Attorney name is required"),
			}},
			{Name: "courtname", Optional: true},
			{Name: "practicearea", Rules: []Rule{
				OneOf(models.PracticeAreas(), "Select a valid practice area"),
			}},
			{Name: "status", Rules: []Rule{
				OneOf(models.CaseStatuses(), "Select a valid case status"),
			}},
			{Name: "filingdate", Rules: []Rule{
				Required("Filing date is required"),
				ParseableDate("Filing date must be a valid date (YYYY-MM-DD)"),
			}},
			{Name: "description", Optional: true},
			{Name: "expectedexpense", Optional: true, Rules: []Rule{
				PositiveNumber("Expected expense must be greater than zero"),
			}},
		},
	}
}

// EventSchema declares the calendar event form
func EventSchema() *Schema {
	return &Schema{
		Entity: "event",
		Fields: []FieldSpec{
			{Name: "title", Rules: []Rule{
				Required("Title is required"),
				MinLen(3, "Title must be at least 3 characters"),
			}},
			{Name: "type", Rules: []Rule{
				OneOf(models.EventTypes(), "Select a valid event type"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
			{Name: "location", Optional: true},
			{Name: "casename", Optional: true},
			{Name: "participants", Optional: true},
			{Name: "reminderoffset", Optional: true, Rules: []Rule{
				PositiveNumber("Reminder offset must be a positive number of minutes"),
			}},
		},
	}
}

// ExpenseSchema declares the case expense mini-form
func ExpenseSchema() *Schema {
	return &Schema{
		Entity: "expense",
		Fields: []FieldSpec{
			{Name: "name", Rules: []Rule{
				Required("Expense name is required"),
			}},
			{Name: "amount", Rules: []Rule{
				PositiveNumber("Amount must be greater than zero"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
		},
	}
}

// MilestoneSchema declares the case milestone mini-form
func MilestoneSchema() *Schema {
	return &Schema{
		Entity: "milestone",
		Fields: []FieldSpec{
			{Name: "title", Rules: []Rule{
				Required("Milestone title is required"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
		},
	}
}

// CaseEventSchema declares the case timeline entry mini-form
func CaseEventSchema() *Schema {
	return &Schema{
		Entity: "case_event",
		Fields: []FieldSpec{
			{Name: "title", Rules: []Rule{
				Required("Event title is required"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
		},
	}
}

// CommunicationSchema declares the case communication mini-form
func CommunicationSchema() *Schema {
	return &Schema{
		Entity: "communication",
		Fields: []FieldSpec{
			{Name: "title", Rules: []Rule{
				Required("Title is required"),
			}},
			{Name: "type", Rules: []Rule{
				OneOf(models.CommunicationTypes(), "Select a valid communication type"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
			{Name: "summary", Optional: true},
			{Name: "detail", Optional: true},
		},
	}
}

// DocumentSchema declares the case document upload mini-form. The three file
// rules are independent so each failure mode keeps its own message.
func DocumentSchema() *Schema {
	return &Schema{
		Entity: "document",
		Fields: []FieldSpec{
			{Name: "file", Rules: []Rule{
				FileRequired("A file is required"),
				FileMaxSize(MaxDocumentSize, "File must be 10MB or smaller"),
				FileTypes(documentExtensions, "File type not allowed. Accepted formats: PDF, DOC, DOCX, TXT, JPG, PNG"),
			}},
			{Name: "description", Optional: true},
		},
	}
}

// ReceiptSchema declares the payment receipt form
func ReceiptSchema() *Schema {
	return &Schema{
		Entity: "receipt",
		Fields: []FieldSpec{
			{Name: "referenceno", Rules: []Rule{
				Required("Reference number is required"),
			}},
			{Name: "clientname", Rules: []Rule{
				Required("Client name is required"),
			}},
			{Name: "date", Rules: []Rule{
				Required("Date is required"),
				ParseableDate("Date must be a valid date (YYYY-MM-DD)"),
			}},
			{Name: "reason", Rules: []Rule{
				Required("Reason is required"),
			}},
			{Name: "amount", Rules: []Rule{
				PositiveNumber("Amount must be greater than zero"),
			}},
			{Name: "amountinwords", Rules: []Rule{
				Required("Amount in words is required"),
			}},
			{Name: "modeofpayment", Rules: []Rule{
				Required("Mode of payment is required"),
			}},
			{Name: "receivedby", Rules: []Rule{
				Required("Received by is required"),
			}},
		},
	}
}
