package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"traffic-insights/internal/models"
	"traffic-insights/internal/shared/filestorages"
)

var (
	ErrStudyInsightNotFound = errors.New("study insight not found")
)

// StudyInsightStore keeps the latest computed insight per study. Upsert
// replaces atomically, so readers never observe a half-written insight.
//
//go:generate mockgen -source=study_insight_store.go -destination=./mocks/study_insight_store_mock.go -package=mocks
type StudyInsightStore interface {
	Upsert(ctx context.Context, insight *models.StudyInsight) error
	Get(ctx context.Context, studyID string) (*models.StudyInsight, error)
}

type studyInsightStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewStudyInsightStore(fileStorage filestorages.FileStorage) StudyInsightStore {
	return &studyInsightStore{fileStorage: fileStorage, dir: "study-insights"}
}

func (s *studyInsightStore) Upsert(ctx context.Context, insight *models.StudyInsight) error {
	jsonData, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to marshal study insight: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(insight.StudyID)

	_, err = s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put study insight: %w", err)
	}
	return nil
}

func (s *studyInsightStore) Get(ctx context.Context, studyID string) (*models.StudyInsight, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(studyID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrStudyInsightNotFound
		}
		return nil, fmt.Errorf("failed to get study insight: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read study insight: %w", err)
	}
	var insight models.StudyInsight
	if err := json.Unmarshal(data, &insight); err != nil {
		return nil, fmt.Errorf("failed to unmarshal study insight: %w", err)
	}
	return &insight, nil
}

func (s *studyInsightStore) getKey(studyID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, studyID)
}
