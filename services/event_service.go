package services

import (
	"bytes"
	"fmt"
	"time"

	"lcv.link/configs"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// IEventService sabit etkinlik bilgisinden takvim daveti üretir.
type IEventService interface {
	// ICS tek bir VEVENT içeren iCalendar çıktısı üretir. DTSTAMP her
	// zaman UTC'dir; yerel saat diliminden bağımsızdır.
	ICS(now time.Time) ([]byte, error)
	// Details sayfa şablonlarında gösterilen etkinlik bilgisini döner.
	Details() configs.EventConfig
}

// EventService IEventService arayüzünü uygular. Etkinlik verisi sunucu
// verisinden değil, başlangıç konfigürasyonundan gelir.
type EventService struct {
	event configs.EventConfig
}

// NewEventService konfigüre edilmiş etkinlik bloğu ile servis oluşturur.
func NewEventService(event configs.EventConfig) *EventService {
	return &EventService{event: event}
}

// ICS takvim davetini kodlar. Hatırlatma olarak etkinlikten bir gün önce
// tetiklenen bir VALARM eklenir.
func (s *EventService) ICS(now time.Time) ([]byte, error) {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uuid.NewString()+"@lcv.link")
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, s.event.Start.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, s.event.End.UTC())
	ve.Props.SetText(ical.PropSummary, s.event.Title)
	if s.event.Description != "" {
		ve.Props.SetText(ical.PropDescription, s.event.Description)
	}
	if s.event.Location != "" {
		ve.Props.SetText(ical.PropLocation, s.event.Location)
	}

	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropTrigger, "-P1D")
	alarm.Props.SetText(ical.PropDescription, "Reminder")
	ve.Children = append(ve.Children, alarm)

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//lcv.link//EN")
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	cal.Children = append(cal.Children, ve)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("takvim daveti kodlanamadı: %w", err)
	}
	return buf.Bytes(), nil
}

// Details etkinlik bilgisini döner.
func (s *EventService) Details() configs.EventConfig {
	return s.event
}

var _ IEventService = (*EventService)(nil)
