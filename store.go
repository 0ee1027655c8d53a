package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"log"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

var (
	dbpath = flag.String("db", "shaderdemo.db", "db file name, empty disables window state")
)

var (
	windowBucket = []byte("window")
	windowKey    = []byte("state")
)

// WindowState is the window placement remembered between runs.
type WindowState struct {
	X, Y          int32
	Width, Height int32
}

func (s WindowState) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

type Store struct {
	db *bolt.DB
}

func NewStore(p string) (*Store, error) {
	if p == "" {
		return nil, errors.New("empty db path")
	}
	db, err := bolt.Open(p, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(windowBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{
		db: db,
	}, nil
}

func (s *Store) UpdateWindowState(state WindowState) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(windowBucket)
		buf := new(bytes.Buffer)
		if err := binary.Write(buf, binary.LittleEndian, &state); err != nil {
			return err
		}
		log.Printf("save window state %+v", state)
		return bkt.Put(windowKey, buf.Bytes())
	})
}

// GetWindowState returns the saved state, ok is false when nothing usable
// was stored.
func (s *Store) GetWindowState() (state WindowState, ok bool) {
	s.db.View(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(windowBucket)
		value := bkt.Get(windowKey)
		if value == nil {
			return nil
		}
		if err := binary.Read(bytes.NewReader(value), binary.LittleEndian, &state); err != nil {
			log.Printf("bad window state: %v", err)
			return nil
		}
		ok = state.Valid()
		return nil
	})
	return state, ok
}

func (s *Store) Close() error {
	return s.db.Close()
}
