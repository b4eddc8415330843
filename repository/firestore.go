package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
	"github.com/jacobmichels/Course-Planner-Go/config"
)

var _ courseplanner.LookupRepository = FirestoreRepository{}

type FirestoreRepository struct {
	firestore *firestore.Client
	cfg       config.Firestore
}

func newFirestoreRepository(ctx context.Context, cfg config.Firestore) (FirestoreRepository, error) {
	// Create a new Firestore client using application default credentials.
	if cfg.CredentialsFile == "" {
		client, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return FirestoreRepository{}, err
		}

		return FirestoreRepository{client, cfg}, nil
	}

	// Create a new Firestore client using supplied credentials file.
	client, err := firestore.NewClient(ctx, cfg.ProjectID, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return FirestoreRepository{}, err
	}

	return FirestoreRepository{client, cfg}, nil
}

func (f FirestoreRepository) Record(ctx context.Context, lookup courseplanner.Lookup) error {
	_, err := f.firestore.Collection(f.cfg.CollectionID).Doc(lookup.ID).Set(ctx, lookup)
	if err != nil {
		return fmt.Errorf("failed to write lookup to collection: %w", err)
	}

	return nil
}

func (f FirestoreRepository) Recent(ctx context.Context, limit int) ([]courseplanner.Lookup, error) {
	documents, err := f.firestore.Collection(f.cfg.CollectionID).OrderBy("CreatedAt", firestore.Desc).Limit(limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get documents in lookups collection: %w", err)
	}

	results := []courseplanner.Lookup{}
	for _, document := range documents {
		var result courseplanner.Lookup
		err = document.DataTo(&result)
		if err != nil {
			return nil, fmt.Errorf("failed to deserialize document: %w", err)
		}

		results = append(results, result)
	}

	return results, nil
}

func (f FirestoreRepository) Close() error {
	return f.firestore.Close()
}
