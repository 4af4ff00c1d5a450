package files

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KromaEnergia/api-contracts/internal/contract"
)

// stubStore keeps objects and their tags in memory so the handlers can be
// exercised without a running object store.
type stubStore struct {
	objects map[string][]byte
	tags    map[string]map[string]string
}

func newStubStore() *stubStore {
	return &stubStore{
		objects: map[string][]byte{},
		tags:    map[string]map[string]string{},
	}
}

func (s *stubStore) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string, objectTags map[string]string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[key] = data
	s.tags[key] = objectTags
	return nil
}

func (s *stubStore) Move(_ context.Context, src, dst string) error {
	data, ok := s.objects[src]
	if !ok {
		return minio.ErrorResponse{Code: "NoSuchKey"}
	}
	s.objects[dst] = data
	s.tags[dst] = s.tags[src]
	delete(s.objects, src)
	delete(s.tags, src)
	return nil
}

func (s *stubStore) SetTags(_ context.Context, key string, objectTags map[string]string) error {
	s.tags[key] = objectTags
	return nil
}

func (s *stubStore) Stat(_ context.Context, key string) (int64, error) {
	data, ok := s.objects[key]
	if !ok {
		return 0, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return int64(len(data)), nil
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&contract.Contract{}, &File{}))
	return db
}

func seedContract(t *testing.T, db *gorm.DB) *contract.Contract {
	t.Helper()
	c := &contract.Contract{
		GroupCode: "g1", DealerCode: "d1",
		ContractorName: "Acme Corp",
		Periodicity:    contract.PeriodicityMonthly,
		Type:           contract.TypeLiability,
		Value:          100,
		EffectiveDate:  time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		ContractStatus: contract.StatusActive,
		CategoryID:     1,
		ResponsibleID:  1,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func uploadRequest(t *testing.T, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "agreement.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	r := httptest.NewRequest(http.MethodPost, "/files/upload", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func TestUploadStoresUnlinkedObject(t *testing.T) {
	store := newStubStore()
	h := NewHandler(setupDB(t), store)

	w := httptest.NewRecorder()
	h.Upload(w, uploadRequest(t, "pdf-bytes"))

	require.Equal(t, http.StatusOK, w.Code)
	var created Created
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.True(t, strings.HasPrefix(created.Path, "uploads/"))
	assert.True(t, strings.HasSuffix(created.Path, ".pdf"))
	assert.Equal(t, map[string]string{"status": "unlinked"}, store.tags[created.Path])
}

func TestLinkToContract(t *testing.T) {
	db := setupDB(t)
	store := newStubStore()
	h := NewHandler(db, store)
	c := seedContract(t, db)
	store.objects["uploads/abc.pdf"] = []byte("pdf-bytes")
	store.tags["uploads/abc.pdf"] = map[string]string{"status": "unlinked"}

	body := fmt.Sprintf(`{"filepath":"uploads/abc.pdf","contract_id":%d}`, c.ID)
	w := httptest.NewRecorder()
	h.LinkToContract(w, httptest.NewRequest(http.MethodPost, "/files/link_to_contract", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	newPath := fmt.Sprintf("%d/abc.pdf", c.ID)
	assert.Contains(t, store.objects, newPath)
	assert.NotContains(t, store.objects, "uploads/abc.pdf")
	assert.Equal(t, map[string]string{"status": "linked"}, store.tags[newPath])

	var record File
	require.NoError(t, db.Where("path = ?", newPath).First(&record).Error)
	assert.Equal(t, c.ID, record.ContractID)
	assert.Equal(t, int64(len("pdf-bytes")), record.Size)

	var reloaded contract.Contract
	require.NoError(t, db.First(&reloaded, c.ID).Error)
	assert.Equal(t, newPath, reloaded.Path)
}

func TestLinkToContractMissingObject(t *testing.T) {
	db := setupDB(t)
	h := NewHandler(db, newStubStore())
	c := seedContract(t, db)

	body := fmt.Sprintf(`{"filepath":"uploads/ghost.pdf","contract_id":%d}`, c.ID)
	w := httptest.NewRecorder()
	h.LinkToContract(w, httptest.NewRequest(http.MethodPost, "/files/link_to_contract", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File does not exist")
}

func TestLinkToContractUnknownContract(t *testing.T) {
	h := NewHandler(setupDB(t), newStubStore())

	w := httptest.NewRecorder()
	h.LinkToContract(w, httptest.NewRequest(http.MethodPost, "/files/link_to_contract",
		strings.NewReader(`{"filepath":"uploads/abc.pdf","contract_id":42}`)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLinkToContractAlreadyLinked(t *testing.T) {
	db := setupDB(t)
	store := newStubStore()
	h := NewHandler(db, store)
	c := seedContract(t, db)
	c.Path = "1/other.pdf"
	require.NoError(t, db.Save(c).Error)

	body := fmt.Sprintf(`{"filepath":"uploads/abc.pdf","contract_id":%d}`, c.ID)
	w := httptest.NewRecorder()
	h.LinkToContract(w, httptest.NewRequest(http.MethodPost, "/files/link_to_contract", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "linked to another file")
}

func TestUnlink(t *testing.T) {
	db := setupDB(t)
	store := newStubStore()
	h := NewHandler(db, store)
	c := seedContract(t, db)

	linkedPath := fmt.Sprintf("%d/abc.pdf", c.ID)
	store.objects[linkedPath] = []byte("pdf-bytes")
	store.tags[linkedPath] = map[string]string{"status": "linked"}
	require.NoError(t, db.Create(&File{ContractID: c.ID, Path: linkedPath, Filename: "abc.pdf", Size: 9}).Error)
	c.Path = linkedPath
	require.NoError(t, db.Save(c).Error)

	body := fmt.Sprintf(`{"filepath":"%s"}`, linkedPath)
	w := httptest.NewRecorder()
	h.Unlink(w, httptest.NewRequest(http.MethodPost, "/files/unlink", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"status": "unlinked"}, store.tags[linkedPath])

	var reloaded contract.Contract
	require.NoError(t, db.First(&reloaded, c.ID).Error)
	assert.Empty(t, reloaded.Path)

	err := db.Where("path = ?", linkedPath).First(&File{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnlinkUnknownFile(t *testing.T) {
	h := NewHandler(setupDB(t), newStubStore())

	w := httptest.NewRecorder()
	h.Unlink(w, httptest.NewRequest(http.MethodPost, "/files/unlink",
		strings.NewReader(`{"filepath":"uploads/ghost.pdf"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File not found")
}

func TestUnlinkContractAlreadyGone(t *testing.T) {
	db := setupDB(t)
	store := newStubStore()
	h := NewHandler(db, store)

	linkedPath := "42/abc.pdf"
	store.objects[linkedPath] = []byte("pdf-bytes")
	store.tags[linkedPath] = map[string]string{"status": "linked"}
	require.NoError(t, db.Create(&File{ContractID: 42, Path: linkedPath, Filename: "abc.pdf", Size: 9}).Error)

	body := fmt.Sprintf(`{"filepath":"%s"}`, linkedPath)
	w := httptest.NewRecorder()
	h.Unlink(w, httptest.NewRequest(http.MethodPost, "/files/unlink", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"status": "unlinked"}, store.tags[linkedPath])
	err := db.Where("path = ?", linkedPath).First(&File{}).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUnlinkContractLookupFailure(t *testing.T) {
	db := setupDB(t)
	store := newStubStore()
	h := NewHandler(db, store)
	c := seedContract(t, db)

	linkedPath := fmt.Sprintf("%d/abc.pdf", c.ID)
	store.tags[linkedPath] = map[string]string{"status": "linked"}
	require.NoError(t, db.Create(&File{ContractID: c.ID, Path: linkedPath, Filename: "abc.pdf", Size: 9}).Error)
	require.NoError(t, db.Migrator().DropTable(&contract.Contract{}))

	body := fmt.Sprintf(`{"filepath":"%s"}`, linkedPath)
	w := httptest.NewRecorder()
	h.Unlink(w, httptest.NewRequest(http.MethodPost, "/files/unlink", strings.NewReader(body)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the object stays linked and the row survives
	assert.Equal(t, map[string]string{"status": "linked"}, store.tags[linkedPath])
	assert.NoError(t, db.Where("path = ?", linkedPath).First(&File{}).Error)
}
