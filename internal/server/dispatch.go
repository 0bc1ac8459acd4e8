package server

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Izaek256/CarRental-Server-Client/internal/model"
	"github.com/Izaek256/CarRental-Server-Client/internal/observability"
	"github.com/Izaek256/CarRental-Server-Client/internal/protocol"
	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
	"github.com/Izaek256/CarRental-Server-Client/internal/report"
	"github.com/Izaek256/CarRental-Server-Client/internal/store"
)

// Dispatcher routes one parsed request to its handler. Every failure comes
// back as an ERROR response; nothing a handler does may kill the session.
type Dispatcher struct {
	store   *store.Store
	reports *report.Generator
	log     zerolog.Logger
}

func NewDispatcher(st *store.Store, reports *report.Generator, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		store:   st,
		reports: reports,
		log:     log.With().Str("component", "dispatch").Logger(),
	}
}

// Handle processes one request line and returns the response to write back.
func (d *Dispatcher) Handle(line string) (resp protocol.Response) {
	start := time.Now()
	req, err := protocol.ParseRequest(line)
	if err != nil {
		observability.RecordRequest("invalid", "invalid", string(protocol.StatusError), time.Since(start))
		return protocol.Error("Invalid request format")
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Str("action", string(req.Action)).Str("table", req.Table).
				Interface("panic", r).Msg("handler panicked")
			resp = protocol.Error(fmt.Sprintf("%v", r))
		}
		observability.RecordRequest(string(req.Action), req.Table, string(resp.Status), time.Since(start))
		d.log.Debug().Str("action", string(req.Action)).Str("table", req.Table).
			Str("status", string(resp.Status)).Dur("duration", time.Since(start)).
			Msg("request dispatched")
	}()

	switch req.Action {
	case protocol.VerbAdd:
		return d.handleAdd(req.Table, req.Payload)
	case protocol.VerbUpdate:
		return d.handleUpdate(req.Table, req.Payload)
	case protocol.VerbDelete:
		return d.handleDelete(req.Table, req.Payload)
	case protocol.VerbFind:
		return d.handleFind(req.Table, req.Payload)
	case protocol.VerbList:
		return d.handleList(req.Table)
	case protocol.VerbReport:
		return d.handleReport(req.Table, req.Payload)
	default:
		return protocol.Error("Unknown action: " + string(req.Action))
	}
}

func (d *Dispatcher) handleAdd(table, data string) protocol.Response {
	desc, ok := model.Lookup(table)
	if !ok {
		return protocol.Error("Unknown table: " + table)
	}
	fields, err := record.Split(data, desc.Delim, desc.Arity)
	if err != nil {
		return protocol.Error(err.Error())
	}
	entity, err := desc.Decode(fields)
	if err != nil {
		return protocol.Error(err.Error())
	}
	if err := d.store.Create(entity); err != nil {
		return protocol.Error(err.Error())
	}
	return protocol.Success(desc.AddedMsg)
}

// handleUpdate expects the record identifier as the leading field, followed
// by the full data field list. Updating an identifier that does not exist
// stores the record as given.
func (d *Dispatcher) handleUpdate(table, data string) protocol.Response {
	desc, ok := model.Lookup(table)
	if !ok {
		return protocol.Error("Unknown table: " + table)
	}
	fields, err := record.Split(data, desc.Delim, desc.Arity+1)
	if err != nil {
		return protocol.Error(err.Error())
	}
	id, err := record.ParseID(fields[0])
	if err != nil {
		return protocol.Error(err.Error())
	}
	entity, err := desc.Decode(fields[1:])
	if err != nil {
		return protocol.Error(err.Error())
	}
	entity.SetID(id)
	if err := d.store.Update(entity); err != nil {
		return protocol.Error(err.Error())
	}
	return protocol.Success(desc.UpdatedMsg)
}

// handleDelete succeeds whether or not the identifier was ever stored.
func (d *Dispatcher) handleDelete(table, data string) protocol.Response {
	if _, ok := model.Lookup(table); !ok {
		return protocol.Error("Unknown table: " + table)
	}
	id, err := record.ParseID(data)
	if err != nil {
		return protocol.Error(err.Error())
	}
	if err := d.store.Delete(table, id); err != nil {
		return protocol.Error(err.Error())
	}
	return protocol.Success("Record deleted successfully")
}

func (d *Dispatcher) handleFind(table, data string) protocol.Response {
	desc, ok := model.Lookup(table)
	if !ok {
		return protocol.Error("Unknown table: " + table)
	}
	id, err := record.ParseID(data)
	if err != nil {
		return protocol.Error(err.Error())
	}
	entity, err := d.store.Find(table, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return protocol.Error(desc.Label + " not found")
		}
		return protocol.Error(err.Error())
	}
	return protocol.Success(entity.Encode())
}

// handleList joins summaries with ';'. An empty table answers SUCCESS with
// an empty payload.
func (d *Dispatcher) handleList(table string) protocol.Response {
	if _, ok := model.Lookup(table); !ok {
		return protocol.Error("Unknown table: " + table)
	}
	ents, err := d.store.List(table)
	if err != nil {
		return protocol.Error(err.Error())
	}
	summaries := make([]string, 0, len(ents))
	for _, e := range ents {
		summaries = append(summaries, e.Summary())
	}
	return protocol.Success(strings.Join(summaries, ";"))
}

// handleReport carries the report kind in the table position.
func (d *Dispatcher) handleReport(kind, data string) protocol.Response {
	msg, err := d.reports.Generate(kind, data)
	if err != nil {
		return protocol.Error(err.Error())
	}
	return protocol.Success(msg)
}
