package watchControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hbertrand-dev/watchstore-api/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

// The listing counts the filtered set first, then fetches one window of it
// under the same predicate with a fully tiebroken ORDER BY.
func TestGetWatchesCountsThenFetchesOneWindow(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "watches" WHERE brand = $1`)).
		WithArgs("Omega").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "watches" WHERE brand = $1 ORDER BY price asc, id asc LIMIT `)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "brand", "price"}).
			AddRow(11, "Seamaster", "Omega", "5400.00").
			AddRow(12, "Speedmaster", "Omega", "6800.00"))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet,
		"/api/watches?brand=Omega&page=2&limit=10&sortBy=price&sortOrder=asc", nil)
	require.NoError(t, err)
	c.Request = req

	GetWatches(gormDB)(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success    bool             `json:"success"`
		Data       []map[string]any `json:"data"`
		Pagination utils.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, int64(25), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWatchesRejectsBadCriteriaBeforeQuerying(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, "/api/watches?minPrice=abc", nil)
	require.NoError(t, err)
	c.Request = req

	GetWatches(gormDB)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
