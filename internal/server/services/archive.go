// Package services contains server-side business logic. This file implements
// ArchiveService: explicit promotion of a draft checkpoint into an immutable,
// hash-chained durable version, with large payloads offloaded to
// S3-compatible object storage.
package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	sc "github.com/dmitrijs2005/draftkeeper/internal/server/config"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/repomanager"
)

// genesisMarker seeds the hash chain for a key that has never been promoted.
const genesisMarker = "draftkeeper/archive-genesis/v1"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	s3PutObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	s3GetObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in)
	}
)

// ArchiveService writes and verifies durable versions. It is only invoked on
// explicit milestones, never on routine autosave, to bound storage growth.
type ArchiveService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

// NewArchiveService constructs an ArchiveService using repositories and
// server config.
func NewArchiveService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *ArchiveService {
	return &ArchiveService{db: db, repomanager: m, config: cfg}
}

func storageKeyFor(key models.DraftKey) string {
	d := time.Now()
	return fmt.Sprintf("archive/%s/%d/%d/%d/%v", key.UserID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ArchiveService) s3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}
	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Promote archives the given verified record as a new immutable snapshot
// linked to the previous one for the same key.
func (s *ArchiveService) Promote(ctx context.Context, record *models.DraftRecord) (*models.DurableVersion, error) {
	repo := s.repomanager.DurableVersions(s.db)

	priorHash := genesisHash(record.Key)
	if latest, err := repo.GetLatest(ctx, record.Key); err == nil {
		priorHash = latest.RecordHash
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("loading latest durable version: %w", err)
	}

	v := &models.DurableVersion{
		ID:            uuid.NewString(),
		UserID:        record.Key.UserID,
		FormSlug:      record.Key.FormSlug,
		ObjectID:      record.Key.ObjectID,
		Payload:       record.Payload,
		Step:          record.Step,
		Version:       record.Version,
		SchemaVersion: record.SchemaVersion,
		PriorHash:     priorHash,
		RecordHash:    recordHash(record.Payload, record.Step, record.Version, record.SchemaVersion, priorHash),
	}

	if s.config.S3OffloadThreshold > 0 && int64(len(record.Payload)) > s.config.S3OffloadThreshold {
		client, err := s.s3Client()
		if err != nil {
			return nil, fmt.Errorf("creating object storage client: %w", err)
		}
		key := storageKeyFor(record.Key)
		_, err = s3PutObject(client, ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.config.S3Bucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader(record.Payload),
		})
		if err != nil {
			return nil, fmt.Errorf("offloading payload: %w", err)
		}
		v.StorageKey = key
		v.Payload = nil
	}

	if err := repo.Insert(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// VerifyChain walks all durable versions for key from genesis and recomputes
// every link. Any broken link signals tampering of the durable history.
func (s *ArchiveService) VerifyChain(ctx context.Context, key models.DraftKey) error {
	repo := s.repomanager.DurableVersions(s.db)

	versions, err := repo.ListByKey(ctx, key)
	if err != nil {
		return err
	}

	prior := genesisHash(key)
	for _, v := range versions {
		payload := v.Payload
		if v.StorageKey != "" {
			payload, err = s.fetchPayload(ctx, v.StorageKey)
			if err != nil {
				return fmt.Errorf("fetching offloaded payload %s: %w", v.StorageKey, err)
			}
		}
		if !bytes.Equal(v.PriorHash, prior) {
			return fmt.Errorf("durable version %s: %w", v.ID, common.ErrCorrupted)
		}
		want := recordHash(payload, v.Step, v.Version, v.SchemaVersion, v.PriorHash)
		if !bytes.Equal(v.RecordHash, want) {
			return fmt.Errorf("durable version %s: %w", v.ID, common.ErrCorrupted)
		}
		prior = v.RecordHash
	}
	return nil
}

func (s *ArchiveService) fetchPayload(ctx context.Context, storageKey string) ([]byte, error) {
	client, err := s.s3Client()
	if err != nil {
		return nil, err
	}
	out, err := s3GetObject(client, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(storageKey),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func genesisHash(key models.DraftKey) []byte {
	h := sha256.New()
	hashBytes(h, []byte(genesisMarker))
	hashBytes(h, []byte(key.String()))
	return h.Sum(nil)
}

func recordHash(payload []byte, step, version, schemaVersion int64, priorHash []byte) []byte {
	h := sha256.New()
	hashBytes(h, payload)
	hashInt(h, step)
	hashInt(h, version)
	hashInt(h, schemaVersion)
	hashBytes(h, priorHash)
	return h.Sum(nil)
}

func hashBytes(w io.Writer, b []byte) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(len(b)))
	w.Write(n[:])
	w.Write(b)
}

func hashInt(w io.Writer, v int64) {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(v))
	w.Write(n[:])
}
