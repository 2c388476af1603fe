// Package store persists sleep sessions to a local BoltDB database
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/doze/internal/models"
)

const sessionBucket = "sessions"

var errDozeRunning = errors.New(
	"is doze already running? Only one instance can open the database at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// key encodes an id so that bolt's byte ordering matches numeric ordering.
func key(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))

	return b
}

func putSession(b *bolt.Bucket, sess *models.Session) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return b.Put(key(sess.ID), value)
}

func (c *Client) Insert(ctx context.Context, sess *models.Session) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var id int64

	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		seq, err := b.NextSequence()
		if err != nil {
			return err
		}

		s := *sess
		s.ID = int64(seq)

		if err := putSession(b, &s); err != nil {
			return err
		}

		id = s.ID

		return nil
	})

	return id, err
}

func (c *Client) Put(ctx context.Context, sess *models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return putSession(tx.Bucket([]byte(sessionBucket)), sess)
	})
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Delete(key(id))
	})
}

func (c *Client) All(ctx context.Context) ([]models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var sessions []models.Session

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(sessionBucket))

		sessions = make([]models.Session, 0, b.Stats().KeyN)

		return b.ForEach(func(_, v []byte) error {
			var sess models.Session

			if err := json.Unmarshal(v, &sess); err != nil {
				return err
			}

			sessions = append(sessions, sess)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// ReplaceAll swaps the contents of the sessions bucket. The bucket sequence
// only ever moves forward, so ids from before the replacement are never
// handed out again.
func (c *Client) ReplaceAll(ctx context.Context, sessions []models.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		old := tx.Bucket([]byte(sessionBucket))
		seq := old.Sequence()

		if err := tx.DeleteBucket([]byte(sessionBucket)); err != nil {
			return err
		}

		b, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := range sessions {
			sess := sessions[i]

			if err := putSession(b, &sess); err != nil {
				return err
			}

			if sess.ID > 0 && uint64(sess.ID) > seq {
				seq = uint64(sess.ID)
			}
		}

		return b.SetSequence(seq)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDozeRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
