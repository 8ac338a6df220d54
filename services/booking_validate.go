package services

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldErrors carries validation failures keyed by form field name. A
// submission with any entry here is rejected as a whole and nothing is
// persisted.
type FieldErrors map[string]string

// add keeps the first message reported for a field, matching how the
// booking forms surface one error per input.
func (fe FieldErrors) add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

const dateLayout = "2006-01-02"

var timeOfDayRe = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	msgCarRequired    = "Please select a car."
	msgCarUnavailable = "The selected car is not available."

	msgStartDateRequired = "Start date is required."
	msgStartDateInvalid  = "Please provide a valid start date."
	msgEndDateRequired   = "End date is required."
	msgEndDateInvalid    = "Please provide a valid end date."
	msgEndBeforeStart    = "End date must be on or after the start date."

	msgTourRequired    = "Please select a tour."
	msgTourUnavailable = "The selected tour is not available."

	msgTourDateRequired = "Tour date is required."
	msgTourDateInvalid  = "Please provide a valid date."
	msgTourDatePast     = "Tour date must be today or later."
	msgTourTimeRequired = "Tour time is required."
	msgTourTimeInvalid  = "Please provide a valid time format (HH:MM)."

	msgPeopleRequired = "Number of people is required."
	msgPeopleMin      = "At least 1 person is required."
	msgPeopleMax      = "Maximum 20 people allowed."

	msgNameRequired  = "Customer name is required."
	msgNameTooLong   = "Customer name may not be greater than 255 characters."
	msgPhoneRequired = "Phone number is required."
	msgPhoneTooLong  = "Phone number may not be greater than 20 characters."
	msgEmailRequired = "Email address is required."
	msgEmailInvalid  = "Please provide a valid email address."
	msgEmailTooLong  = "Email address may not be greater than 255 characters."
)

type CarBookingRequest struct {
	CarID         uint   `json:"car_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type TourBookingRequest struct {
	TourID         uint   `json:"tour_id"`
	TourDate       string `json:"tour_date"`
	TourTime       string `json:"tour_time"`
	NumberOfPeople *int   `json:"number_of_people"`
	CustomerName   string `json:"customer_name"`
	CustomerPhone  string `json:"customer_phone"`
	CustomerEmail  string `json:"customer_email"`
}

// validateCarBookingFields checks everything that does not need the
// database; the caller adds the catalog-existence errors on top.
func validateCarBookingFields(req CarBookingRequest) FieldErrors {
	fe := FieldErrors{}

	if req.CarID == 0 {
		fe.add("car_id", msgCarRequired)
	}

	var start, end time.Time
	startOK, endOK := false, false

	if strings.TrimSpace(req.StartDate) == "" {
		fe.add("start_date", msgStartDateRequired)
	} else if t, err := time.Parse(dateLayout, req.StartDate); err != nil {
		fe.add("start_date", msgStartDateInvalid)
	} else {
		start, startOK = t, true
	}

	if strings.TrimSpace(req.EndDate) == "" {
		fe.add("end_date", msgEndDateRequired)
	} else if t, err := time.Parse(dateLayout, req.EndDate); err != nil {
		fe.add("end_date", msgEndDateInvalid)
	} else {
		end, endOK = t, true
	}

	if startOK && endOK && end.Before(start) {
		fe.add("end_date", msgEndBeforeStart)
	}

	validateCustomerFields(fe, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	return fe
}

func validateTourBookingFields(req TourBookingRequest) FieldErrors {
	fe := FieldErrors{}

	if req.TourID == 0 {
		fe.add("tour_id", msgTourRequired)
	}

	if strings.TrimSpace(req.TourDate) == "" {
		fe.add("tour_date", msgTourDateRequired)
	} else if t, err := time.Parse(dateLayout, req.TourDate); err != nil {
		fe.add("tour_date", msgTourDateInvalid)
	} else if dateOnly(t).Before(dateOnly(time.Now())) {
		// "Today" is evaluated on the server, never taken from the client.
		fe.add("tour_date", msgTourDatePast)
	}

	if strings.TrimSpace(req.TourTime) == "" {
		fe.add("tour_time", msgTourTimeRequired)
	} else if !timeOfDayRe.MatchString(req.TourTime) {
		fe.add("tour_time", msgTourTimeInvalid)
	}

	switch {
	case req.NumberOfPeople == nil:
		fe.add("number_of_people", msgPeopleRequired)
	case *req.NumberOfPeople < 1:
		fe.add("number_of_people", msgPeopleMin)
	case *req.NumberOfPeople > 20:
		fe.add("number_of_people", msgPeopleMax)
	}

	validateCustomerFields(fe, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	return fe
}

func validateCustomerFields(fe FieldErrors, name, phone, email string) {
	// Limits count characters, not bytes, so multibyte names fit.
	name = strings.TrimSpace(name)
	if name == "" {
		fe.add("customer_name", msgNameRequired)
	} else if utf8.RuneCountInString(name) > 255 {
		fe.add("customer_name", msgNameTooLong)
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		fe.add("customer_phone", msgPhoneRequired)
	} else if utf8.RuneCountInString(phone) > 20 {
		fe.add("customer_phone", msgPhoneTooLong)
	}

	email = strings.TrimSpace(email)
	switch {
	case email == "":
		fe.add("customer_email", msgEmailRequired)
	case utf8.RuneCountInString(email) > 255:
		fe.add("customer_email", msgEmailTooLong)
	case !isValidEmail(email):
		fe.add("customer_email", msgEmailInvalid)
	}
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	// Reject "Name <a@b>" forms; the field holds a bare address.
	return err == nil && addr.Address == email
}
