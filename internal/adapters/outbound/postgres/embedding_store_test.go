package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upsertSQL = "INSERT INTO embedding_records (namespace,object_id,embedding,content,metadata,updated_at) VALUES ($1,$2,$3,$4,$5,$6) " +
	"ON CONFLICT (namespace, object_id) DO UPDATE SET embedding = EXCLUDED.embedding, content = EXCLUDED.content, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at"

func TestEmbeddingStore_Upsert(t *testing.T) {
	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	record := domain.EmbeddingRecord{
		Namespace: domain.Namespace_METRICS,
		ObjectID:  "revenue",
		Vector:    []float64{0.6, 0.8},
		Content:   "Total revenue from completed orders",
		Metadata:  domain.Metadata{domain.MetadataKey_DATABASE_ID: "sales", domain.MetadataKey_TABLE: "orders"},
		UpdatedAt: fixedTime,
	}

	tests := map[string]struct {
		records         []domain.EmbeddingRecord
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			records: []domain.EmbeddingRecord{record},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).
					WithArgs(
						"metrics",
						"revenue",
						pgvector.NewVector([]float32{0.6, 0.8}),
						record.Content,
						`{"database_id":"sales","table":"orders"}`,
						fixedTime,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"multiple-records-single-statement": {
			records: []domain.EmbeddingRecord{
				record,
				{Namespace: domain.Namespace_GLOSSARY, ObjectID: "churn", Vector: []float64{1, 0}, Content: "Churn", UpdatedAt: fixedTime},
			},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO embedding_records (namespace,object_id,embedding,content,metadata,updated_at) VALUES ($1,$2,$3,$4,$5,$6),($7,$8,$9,$10,$11,$12) "+
					"ON CONFLICT (namespace, object_id) DO UPDATE SET embedding = EXCLUDED.embedding, content = EXCLUDED.content, metadata = EXCLUDED.metadata, updated_at = EXCLUDED.updated_at").
					WithArgs(
						"metrics", "revenue", pgvector.NewVector([]float32{0.6, 0.8}), record.Content, `{"database_id":"sales","table":"orders"}`, fixedTime,
						"glossary", "churn", pgvector.NewVector([]float32{1, 0}), "Churn", "{}", fixedTime,
					).
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		"no-records": {
			records:         nil,
			setExpectations: func(mock sqlmock.Sqlmock) {},
		},
		"database-error": {
			records: []domain.EmbeddingRecord{record},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(upsertSQL).WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewEmbeddingStore(db)
			gotErr := store.Upsert(context.Background(), tt.records)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingStore_Search(t *testing.T) {
	vec := pgvector.NewVector([]float32{1, 0})

	tests := map[string]struct {
		query           domain.SearchQuery
		setExpectations func(mock sqlmock.Sqlmock)
		expectedHits    []domain.SearchHit
		expectErr       bool
	}{
		"success-with-filter": {
			query: domain.SearchQuery{
				Namespace: domain.Namespace_METRICS,
				Vector:    []float64{1, 0},
				TopK:      5,
				Filter:    domain.Metadata{domain.MetadataKey_DATABASE_ID: "sales"},
			},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"object_id", "content", "metadata", "score"}).
					AddRow("revenue", "Total revenue", `{"database_id":"sales"}`, 0.92).
					AddRow("aov", "Average order value", `{"database_id":"sales"}`, 0.41)
				mock.ExpectQuery("SELECT object_id, content, metadata, 1 - (embedding <=> $1) AS score FROM embedding_records " +
					"WHERE namespace = $2 AND metadata @> $3::jsonb ORDER BY embedding <=> $4, object_id LIMIT 5").
					WithArgs(vec, "metrics", `{"database_id":"sales"}`, vec).
					WillReturnRows(rows)
			},
			expectedHits: []domain.SearchHit{
				{ObjectID: "revenue", Score: 0.92, Content: "Total revenue", Metadata: domain.Metadata{"database_id": "sales"}},
				{ObjectID: "aov", Score: 0.41, Content: "Average order value", Metadata: domain.Metadata{"database_id": "sales"}},
			},
		},
		"success-without-filter": {
			query: domain.SearchQuery{Namespace: domain.Namespace_GLOSSARY, Vector: []float64{1, 0}, TopK: 2},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"object_id", "content", "metadata", "score"})
				mock.ExpectQuery("SELECT object_id, content, metadata, 1 - (embedding <=> $1) AS score FROM embedding_records " +
					"WHERE namespace = $2 ORDER BY embedding <=> $3, object_id LIMIT 2").
					WithArgs(vec, "glossary", vec).
					WillReturnRows(rows)
			},
			expectedHits: []domain.SearchHit{},
		},
		"zero-top-k-skips-query": {
			query:           domain.SearchQuery{Namespace: domain.Namespace_GLOSSARY, Vector: []float64{1, 0}, TopK: 0},
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedHits:    []domain.SearchHit{},
		},
		"invalid-metadata": {
			query: domain.SearchQuery{Namespace: domain.Namespace_GLOSSARY, Vector: []float64{1, 0}, TopK: 1},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"object_id", "content", "metadata", "score"}).
					AddRow("x", "y", `not-json`, 0.5)
				mock.ExpectQuery("SELECT object_id, content, metadata, 1 - (embedding <=> $1) AS score FROM embedding_records " +
					"WHERE namespace = $2 ORDER BY embedding <=> $3, object_id LIMIT 1").
					WillReturnRows(rows)
			},
			expectErr: true,
		},
		"database-error": {
			query: domain.SearchQuery{Namespace: domain.Namespace_GLOSSARY, Vector: []float64{1, 0}, TopK: 1},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT object_id, content, metadata, 1 - (embedding <=> $1) AS score FROM embedding_records " +
					"WHERE namespace = $2 ORDER BY embedding <=> $3, object_id LIMIT 1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewEmbeddingStore(db)
			hits, err := store.Search(context.Background(), tt.query)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedHits, hits)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingStore_LookupByMetadata(t *testing.T) {
	tests := map[string]struct {
		key             string
		values          []string
		filter          domain.Metadata
		setExpectations func(mock sqlmock.Sqlmock)
		expectedHits    []domain.SearchHit
		expectErr       bool
	}{
		"success": {
			key:    domain.MetadataKey_RULE_TYPE,
			values: []string{"fiscal_calendar", "currency"},
			filter: domain.Metadata{domain.MetadataKey_DATABASE_ID: "sales"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"object_id", "content", "metadata"}).
					AddRow("fy", "Fiscal year starts in February", `{"database_id":"sales","rule_type":"fiscal_calendar"}`)
				mock.ExpectQuery("SELECT object_id, content, metadata FROM embedding_records " +
					"WHERE namespace = $1 AND metadata->>'rule_type' IN ($2,$3) AND metadata @> $4::jsonb ORDER BY object_id").
					WithArgs("rules", "fiscal_calendar", "currency", `{"database_id":"sales"}`).
					WillReturnRows(rows)
			},
			expectedHits: []domain.SearchHit{{
				ObjectID: "fy",
				Score:    1,
				Content:  "Fiscal year starts in February",
				Metadata: domain.Metadata{"database_id": "sales", "rule_type": "fiscal_calendar"},
			}},
		},
		"no-values": {
			key:             domain.MetadataKey_RULE_TYPE,
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedHits:    []domain.SearchHit{},
		},
		"invalid-key": {
			key:             "rule_type'; DROP TABLE x; --",
			values:          []string{"a"},
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectErr:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewEmbeddingStore(db)
			hits, err := store.LookupByMetadata(context.Background(), domain.Namespace_RULES, tt.key, tt.values, tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedHits, hits)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingStore_Delete(t *testing.T) {
	tests := map[string]struct {
		ids             []string
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			ids: []string{"revenue", "aov"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM embedding_records WHERE namespace = $1 AND object_id IN ($2,$3)").
					WithArgs("metrics", "revenue", "aov").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"no-ids": {
			ids:             nil,
			setExpectations: func(mock sqlmock.Sqlmock) {},
		},
		"database-error": {
			ids: []string{"revenue"},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("DELETE FROM embedding_records WHERE namespace = $1 AND object_id IN ($2)").
					WithArgs("metrics", "revenue").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			store := NewEmbeddingStore(db)
			gotErr := store.Delete(context.Background(), domain.Namespace_METRICS, tt.ids)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitEmbeddingStore_Initialize(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() // nolint:errcheck

	depend.Register(db)

	_, err = InitEmbeddingStore{Backend: BackendPostgres}.Initialize(context.Background())
	assert.NoError(t, err)

	store, err := depend.Resolve[domain.VectorStore]()
	assert.NoError(t, err)
	assert.IsType(t, EmbeddingStore{}, store)
}

func TestInitEmbeddingStore_Initialize_OtherBackend(t *testing.T) {
	_, err := InitEmbeddingStore{Backend: "memory"}.Initialize(context.Background())
	assert.NoError(t, err)
}
