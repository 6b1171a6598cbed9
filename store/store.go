//----------------------------------------------------------------------
// This file is part of skymap.
// Copyright (C) 2024-present Bernd Fix >Y<,  DO3YQ
//
// skymap is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// skymap is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

// Package store is an optional, ancillary SQLite-backed cache for sky
// maps produced by skymap. It is not part of the core evaluator: the
// core is stateless and owns no buffers beyond a single call frame, so
// a caller that wants to persist a result across calls does so through
// this separate package.
package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// database initialization statement
var ini = `
create table skymap (
    id      integer primary key,    -- database record id
    event   varchar(63) not null,   -- event identifier
    npix    integer not null,       -- pixel count (12*N^2)
    gmst    float not null,         -- sidereal time at evaluation (radians)
    prior   integer not null,       -- radial prior selector, -1 for TDOA-only maps
    pixels  blob not null           -- gob-encoded []float64 probability map
);
create unique index idx_event on skymap(event);
`

// Store wraps a SQLite database of cached sky maps.
type Store struct {
	inst *sql.DB
}

// Open opens (and if necessary initializes) a SQLite3-backed store.
func Open(fname string) (s *Store, err error) {
	s = new(Store)
	if s.inst, err = sql.Open("sqlite3", fname); err == nil {
		var num int64
		row := s.inst.QueryRow("select count(*) from skymap")
		if err = row.Scan(&num); err != nil {
			_, err = s.inst.Exec(ini)
		}
	}
	return
}

// Close the store.
func (s *Store) Close() error {
	if s.inst == nil {
		return errors.New("store not opened")
	}
	return s.inst.Close()
}

// Save persists a sky map under the given event identifier, replacing
// any previously saved map for the same event. prior should be -1 for
// a TDOA-only map (SkyMapTDOA has no radial prior).
func (s *Store) Save(event string, npix int, gmst float64, prior int, pixels []float64) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(pixels); err != nil {
		return fmt.Errorf("encoding pixel map: %w", err)
	}
	stmt := "replace into skymap(event,npix,gmst,prior,pixels) values(?,?,?,?,?)"
	_, err := s.inst.Exec(stmt, event, npix, gmst, prior, buf.Bytes())
	return err
}

// Load retrieves a previously-saved sky map by event identifier.
func (s *Store) Load(event string) (npix int, gmst float64, prior int, pixels []float64, err error) {
	row := s.inst.QueryRow("select npix,gmst,prior,pixels from skymap where event=?", event)
	var blob []byte
	if err = row.Scan(&npix, &gmst, &prior, &blob); err != nil {
		return
	}
	err = gob.NewDecoder(bytes.NewReader(blob)).Decode(&pixels)
	return
}

// Events lists the event identifiers currently held in the store, most
// recently inserted first.
func (s *Store) Events() (events []string, err error) {
	rows, err := s.inst.Query("select event from skymap order by id desc")
	if err != nil {
		return
	}
	defer rows.Close()
	for rows.Next() {
		var e string
		if err = rows.Scan(&e); err != nil {
			return
		}
		events = append(events, e)
	}
	return
}
