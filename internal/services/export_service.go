package services

import (
	"encoding/csv"
	"io"

	"taxiops/internal/domain/models"
	"taxiops/internal/utils"
)

var (
	TripCSVHeader         = []string{"driver_id", "vehicle_id", "cabNumber", "startTime", "endTime", "durationMinutes", "pickupLat", "pickupLng", "dropoffLat", "dropoffLng", "distanceMiles", "fare", "tripStatus", "createdAt"}
	SessionGroupCSVHeader = []string{"driver_id", "cabNumber", "day", "totalMinutes", "sessionCount"}
	DriverCSVHeader       = []string{"driver_id", "firstName", "lastName", "email", "dob", "dot_expiry", "cbi_expiry", "puc_expiry", "dl_number", "dl_expiry", "signedContract", "ein_number", "llc_name", "llc_expiry"}
	VehicleCSVHeader      = []string{"vehicle_id", "cabNumber", "vinNumber", "regis_expriry", "lic_plate", "color", "make", "model", "year", "status"}
	FleetCSVHeader        = []string{"driver_id", "vehicle_id", "firstName", "lastName", "email", "cabNumber", "lic_plate", "make", "model", "added_to_insurance", "weekly_balance", "status"}
)

func writeCSV[T any](w io.Writer, header []string, rows []T, record func(T) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTripsCSV writes trips; zero numbers and missing points become empty cells.
func WriteTripsCSV(w io.Writer, trips []models.Trip) error {
	return writeCSV(w, TripCSVHeader, trips, func(t models.Trip) []string {
		var pLat, pLng, dLat, dLng string
		if t.PickupLocation != nil {
			pLat, pLng = utils.NumberOrEmpty(t.PickupLocation.Lat), utils.NumberOrEmpty(t.PickupLocation.Lng)
		}
		if t.DropoffLocation != nil {
			dLat, dLng = utils.NumberOrEmpty(t.DropoffLocation.Lat), utils.NumberOrEmpty(t.DropoffLocation.Lng)
		}
		return []string{
			t.DriverID.String(),
			t.VehicleID.String(),
			t.CabNumber,
			t.StartTime,
			t.EndTime,
			utils.NumberOrEmpty(t.DurationMinutes),
			pLat, pLng, dLat, dLng,
			utils.NumberOrEmpty(t.DistanceMiles),
			utils.NumberOrEmpty(t.Fare),
			t.TripStatus,
			t.CreatedAt,
		}
	})
}

func WriteSessionGroupsCSV(w io.Writer, groups []models.SessionGroup) error {
	return writeCSV(w, SessionGroupCSVHeader, groups, func(g models.SessionGroup) []string {
		return []string{
			g.DriverID.String(),
			g.CabNumber,
			g.Day,
			utils.FormatNumber(float64(g.TotalMinutes)),
			utils.FormatNumber(float64(g.SessionCount)),
		}
	})
}

func WriteDriversCSV(w io.Writer, drivers []models.DriverView) error {
	return writeCSV(w, DriverCSVHeader, drivers, func(v models.DriverView) []string {
		d := v.Driver
		return []string{
			d.DriverID.String(), d.FirstName, d.LastName, d.Email,
			utils.DateOnly(d.DOB), utils.DateOnly(d.DOTExpiry), utils.DateOnly(d.CBIExpiry), utils.DateOnly(d.PUCExpiry),
			d.DLNumber, utils.DateOnly(d.DLExpiry), d.SignedContract, d.EINNumber, d.LLCName, utils.DateOnly(d.LLCExpiry),
		}
	})
}

func WriteVehiclesCSV(w io.Writer, vehicles []models.Vehicle) error {
	return writeCSV(w, VehicleCSVHeader, vehicles, func(v models.Vehicle) []string {
		return []string{
			v.VehicleID.String(), v.CabNumber, v.VINNumber, utils.DateOnly(v.RegisExpiry),
			v.LicPlate, v.Color, v.Make, v.Model, v.Year.String(), v.Status,
		}
	})
}

func WriteFleetCSV(w io.Writer, fleet []models.Assignment) error {
	return writeCSV(w, FleetCSVHeader, fleet, func(a models.Assignment) []string {
		return []string{
			a.DriverID.String(), a.VehicleID.String(), a.FirstName, a.LastName, a.Email,
			a.CabNumber, a.LicPlate, a.Make, a.Model, utils.DateOnly(a.AddedToInsurance),
			utils.FormatMoney(a.WeeklyBalance), a.Status,
		}
	})
}
