package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	intconfig "taxiops/internal/config"
	"taxiops/internal/domain"
	"taxiops/internal/domain/models"
	"taxiops/internal/metrics"
	"taxiops/internal/repositories"
	"taxiops/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Letter templates.
const (
	FormInsuranceAdd    = "insurance"
	FormInsuranceRemove = "insurance-remove"
	FormAVIRequest      = "avi-request"
	FormAVIRefund       = "avi-refund"
)

// Page geometry in mm (A4 portrait).
const (
	letterMarginX  = 10.0
	letterTopY     = 20.0
	letterBodyMaxY = 250.0
	footerTopY     = 262.0
	footerLineStep = 6.0
	refundStartY   = 40.0
	refundLineStep = 8.0
	wrapWidth      = 190.0
	wrapLineStep   = 5.0
)

type RefundEntry struct {
	Cab string `json:"cab"`
	VIN string `json:"vin"`
}

// LetterRequest is what the Form Generator screen submits.
type LetterRequest struct {
	FormType      string        `json:"formType"`
	CabNumber     string        `json:"cabNumber"`
	EffectiveDate string        `json:"effectiveDate"`
	RefundEntries []RefundEntry `json:"refundEntries"`
}

// letterContext is the data looked up for the selected cab.
type letterContext struct {
	Vehicle    models.Vehicle
	DriverName string
}

type placedLine struct {
	Page int
	Y    float64
	Text string
}

// DocsService builds the compliance letters and trip receipts.
type DocsService struct {
	Vehicles    repositories.VehicleRepository
	Assignments repositories.AssignmentRepository
	Letterhead  intconfig.Letterhead
	Location    *time.Location
	RequestID   string
	Lookup      func(ctx context.Context, cab string) (letterContext, error)
}

// GenerateLetter renders one of the four letter templates.
func (s DocsService) GenerateLetter(ctx context.Context, req LetterRequest) ([]byte, string, error) {
	req.FormType = strings.TrimSpace(req.FormType)
	req.CabNumber = strings.TrimSpace(req.CabNumber)

	var lc letterContext
	switch req.FormType {
	case FormInsuranceAdd, FormInsuranceRemove, FormAVIRequest:
		if req.CabNumber == "" {
			return nil, "", domain.ValidationError{Field: "cabNumber", Msg: "cabNumber is required"}
		}
		var err error
		lc, err = s.lookup(ctx, req.CabNumber)
		if err != nil {
			return nil, "", err
		}
	case FormAVIRefund:
		if len(req.RefundEntries) == 0 {
			return nil, "", domain.ValidationError{Field: "refundEntries", Msg: "at least one refund entry is required"}
		}
	default:
		return nil, "", domain.ValidationError{Field: "formType", Msg: "Invalid form selection"}
	}

	lines := letterLines(req, lc, s.letterhead())
	pdfBytes, err := renderLetter(lines, s.letterhead())
	if err != nil {
		return nil, "", domain.InternalError{Msg: "render letter", Err: err}
	}

	metrics.DocumentsGenerated.WithLabelValues(req.FormType).Inc()
	utils.LogEvent(s.RequestID, "docs", "generate_letter", fmt.Sprintf("form=%s cab=%s", req.FormType, req.CabNumber))
	return pdfBytes, req.FormType + "_form.pdf", nil
}

// GenerateReceipt renders the single-trip receipt.
func (s DocsService) GenerateReceipt(trip models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Receipt", false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 20, "Trip Receipt")

	pdf.SetFont("Helvetica", "", 12)
	for i, line := range receiptLines(trip, s.location()) {
		pdf.Text(20, 35+float64(i)*10, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "render receipt", Err: err}
	}

	metrics.DocumentsGenerated.WithLabelValues("trip-receipt").Inc()
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", "trip_id="+trip.ID)
	return buf.Bytes(), fmt.Sprintf("trip-receipt-%s.pdf", utils.SafeFilenamePart(trip.ID)), nil
}

func (s DocsService) letterhead() intconfig.Letterhead {
	if s.Letterhead.CompanyName == "" {
		return intconfig.DefaultLetterhead()
	}
	return s.Letterhead
}

func (s DocsService) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}

func (s DocsService) lookup(ctx context.Context, cab string) (letterContext, error) {
	if s.Lookup != nil {
		return s.Lookup(ctx, cab)
	}
	vehicles, err := s.Vehicles.List(ctx)
	if err != nil {
		return letterContext{}, err
	}
	assignments, err := s.Assignments.List(ctx)
	if err != nil {
		return letterContext{}, err
	}

	var lc letterContext
	if v, ok := FindByCab(vehicles, cab); ok {
		lc.Vehicle = v
	} else {
		lc.Vehicle = models.Vehicle{CabNumber: cab}
	}
	if a, ok := assignmentForCab(assignments, cab); ok {
		lc.DriverName = strings.TrimSpace(a.FirstName + " " + a.LastName)
	}
	return lc, nil
}

// letterLines lays out the letter body at fixed coordinates.
func letterLines(req LetterRequest, lc letterContext, lh intconfig.Letterhead) []placedLine {
	page := 0
	at := func(y float64, text string) placedLine { return placedLine{Page: page, Y: y, Text: text} }

	cab := domain.OrPlaceholder(req.CabNumber)
	date := domain.OrPlaceholder(utils.DateOnly(req.EffectiveDate))
	driver := domain.OrPlaceholder(lc.DriverName)
	vin := domain.OrPlaceholder(lc.Vehicle.VINNumber)

	switch req.FormType {
	case FormInsuranceAdd:
		return []placedLine{
			at(20, "Dear Team,"),
			at(30, fmt.Sprintf("We kindly request that you add Cab #%s to our insurance policy, effective %s.", cab, date)),
			at(40, fmt.Sprintf("Please send the updated Insurance Certificate and Vehicle Schedule to: %s", lh.InsuranceEmail)),
			at(60, "Sincerely,"),
		}

	case FormAVIRequest:
		makeModel := strings.TrimSpace(lc.Vehicle.Make + " " + lc.Vehicle.Model)
		return []placedLine{
			at(20, "To: AVI Sales Office"),
			at(26, "Denver International Airport"),
			at(32, "Phone: 303-342-4053"),
			at(44, "Dear AVI Staff,"),
			at(52, "We kindly request a Credential and AVI Tag for:"),
			at(62, "Driver Name: "+driver),
			at(68, "Cab #: "+cab),
			at(74, "VIN #: "+vin),
			at(80, "Make/Model: "+domain.OrPlaceholder(makeModel)),
			at(86, "License Plate: "+domain.OrPlaceholder(lc.Vehicle.LicPlate)),
			at(100, "Thank you,"),
		}

	case FormAVIRefund:
		out := []placedLine{
			at(20, "Dear Team,"),
			at(30, "We kindly request the AVI Tag refund for the following vehicles:"),
		}
		y := refundStartY
		for _, e := range req.RefundEntries {
			if y > letterBodyMaxY {
				page++
				y = letterTopY
			}
			out = append(out, at(y, fmt.Sprintf("• Cab #%s – Last 6 digits of VIN: %s",
				domain.OrPlaceholder(strings.TrimSpace(e.Cab)), domain.OrPlaceholder(strings.TrimSpace(e.VIN)))))
			y += refundLineStep
		}
		y += 20
		if y > letterBodyMaxY {
			page++
			y = letterTopY
		}
		return append(out, at(y, "Sincerely,"))

	case FormInsuranceRemove:
		return []placedLine{
			at(20, "Dear Team,"),
			at(30, fmt.Sprintf("Please remove the following driver and vehicle from our policy effective %s:", date)),
			at(40, "Driver Name: "+driver),
			at(46, "Cab #: "+cab),
			at(52, "VIN #: "+vin),
			at(62, fmt.Sprintf("Please send the updated Insurance Certificate to %s", lh.InsuranceEmail)),
			at(72, "Sincerely,"),
		}
	}
	return nil
}

func footerLines(lh intconfig.Letterhead) []string {
	return []string{
		lh.CompanyName,
		lh.AddressLine1,
		lh.AddressLine2,
		"Phone: " + lh.Phone,
		"Email: " + lh.Email,
	}
}

func renderLetter(lines []placedLine, lh intconfig.Letterhead) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Letter", false)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pages := 1
	for _, l := range lines {
		if l.Page+1 > pages {
			pages = l.Page + 1
		}
	}

	for p := 0; p < pages; p++ {
		pdf.AddPage()
		pdf.SetFont("Times", "", 12)
		for _, l := range lines {
			if l.Page != p {
				continue
			}
			for i, part := range pdf.SplitLines([]byte(tr(l.Text)), wrapWidth) {
				pdf.Text(letterMarginX, l.Y+float64(i)*wrapLineStep, string(part))
			}
		}
		for i, f := range footerLines(lh) {
			pdf.Text(letterMarginX, footerTopY+float64(i)*footerLineStep, tr(f))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func receiptLines(t models.Trip, loc *time.Location) []string {
	end := domain.Placeholder
	if strings.TrimSpace(t.EndTime) != "" {
		end = utils.FormatLocal(t.EndTime, loc)
	}
	return []string{
		"Driver ID: " + domain.OrPlaceholder(t.DriverID.String()),
		"Vehicle ID: " + domain.OrPlaceholder(t.VehicleID.String()),
		"Cab Number: " + domain.OrPlaceholder(t.CabNumber),
		"Start Time: " + domain.OrPlaceholder(utils.FormatLocal(t.StartTime, loc)),
		"End Time: " + end,
		fmt.Sprintf("Duration: %s minutes", utils.FormatNumber(t.DurationMinutes)),
		"Pickup Location: " + formatLatLng(t.PickupLocation),
		"Dropoff Location: " + formatLatLng(t.DropoffLocation),
		fmt.Sprintf("Distance: %s mi", utils.FormatNumber(t.DistanceMiles)),
		"Fare: $" + utils.FormatNumber(t.Fare),
		"Status: " + domain.OrPlaceholder(t.TripStatus),
		"Created At: " + domain.OrPlaceholder(utils.FormatLocal(t.CreatedAt, loc)),
	}
}

func formatLatLng(p *models.LatLng) string {
	if p == nil {
		return domain.Placeholder
	}
	return utils.FormatNumber(p.Lat) + ", " + utils.FormatNumber(p.Lng)
}
