package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Formatos aceptados para appointment_date. Sin desfase se interpreta en UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// flexTime fecha JSON con o sin zona horaria.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("fecha inválida: %w", err)
	}
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*f = flexTime(t)
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida %q", s)
}

func (r *CreateAppointmentRequest) UnmarshalJSON(b []byte) error {
	type alias CreateAppointmentRequest
	aux := struct {
		*alias
		AppointmentDate *flexTime `json:"appointment_date"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.AppointmentDate != nil {
		r.AppointmentDate = time.Time(*aux.AppointmentDate)
	}
	return nil
}

// UnmarshalJSON rechaza campos desconocidos: el PATCH solo admite state y appointment_date.
func (r *UpdateAppointmentRequest) UnmarshalJSON(b []byte) error {
	type alias UpdateAppointmentRequest
	aux := struct {
		*alias
		AppointmentDate *flexTime `json:"appointment_date"`
	}{alias: (*alias)(r)}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}
	if aux.AppointmentDate != nil {
		t := time.Time(*aux.AppointmentDate)
		r.AppointmentDate = &t
	}
	return nil
}
