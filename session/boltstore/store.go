// Package boltstore provides a session.Store that keeps the token pair in a bbolt file.
package boltstore

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jrsteele09/go-hotel-admin/internal/errors"
	"github.com/jrsteele09/go-hotel-admin/session"
)

const (
	connectTimeout = 5 * time.Second
	bucketName     = "session"
)

var _ session.Store = (*Store)(nil)

// Store keeps the token blob under a single key. The database is opened for each
// operation so several processes can share the file.
type Store struct {
	dbpath string
	key    []byte
}

// New returns a Store persisting into dbpath under key.
// It errors if the database schema can not be created.
func New(dbpath, key string) (*Store, error) {
	if key == "" {
		return nil, errors.Wrapf(errors.ErrInvalidRequest, "boltstore.New empty storage key")
	}
	s := &Store{dbpath: dbpath, key: []byte(key)}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed %s bucket creation", bucketName)
	}
	return s, nil
}

func (s *Store) open() (*bolt.DB, error) {
	db, err := bolt.Open(s.dbpath, 0600, &bolt.Options{Timeout: connectTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed connecting to database %s", s.dbpath)
	}
	return db, nil
}

func (s *Store) GetTokens() (*session.Tokens, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var blob []byte
	err = db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return errors.ErrSessionNotFound
		}
		// bbolt values are only valid inside the transaction
		if v := bucket.Get(s.key); v != nil {
			blob = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session.Decode(blob)
}

func (s *Store) SetTokens(tokens *session.Tokens) error {
	blob, err := session.Encode(tokens)
	if err != nil {
		return err
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return bucket.Put(s.key, blob)
	})
	if err != nil {
		return errors.Wrapf(err, "failed saving session")
	}
	return nil
}

func (s *Store) Clear() error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		return bucket.Delete(s.key)
	})
	if err != nil {
		return errors.Wrapf(err, "failed clearing session")
	}
	return nil
}
