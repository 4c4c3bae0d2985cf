package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

func bindQuery(t *testing.T, rawQuery string) (Params, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validators.Setup()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return Bind(c)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, New(1, 20).Offset())
	assert.Equal(t, 20, New(2, 20).Offset())
	assert.Equal(t, 30, New(4, 10).Offset())
}

func TestBind_Defaults(t *testing.T) {
	p, err := bindQuery(t, "")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestBind_Explicit(t *testing.T) {
	p, err := bindQuery(t, "page=3&limit=5")
	require.NoError(t, err)
	assert.Equal(t, Params{Page: 3, Limit: 5}, p)
	assert.Equal(t, 10, p.Offset())
}

func TestBind_Rejects(t *testing.T) {
	for _, q := range []string{"page=0", "page=-2", "limit=0", "limit=101", "page=abc", "limit=1.5", "page=1000001", "page=9223372036854775807", "page=99999999999999999999"} {
		t.Run(q, func(t *testing.T) {
			_, err := bindQuery(t, q)
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		})
	}
}

func TestBind_LargestPage(t *testing.T) {
	p, err := bindQuery(t, "page=1000000&limit=100")
	require.NoError(t, err)
	assert.Equal(t, MaxPage, p.Page)
	assert.Equal(t, (MaxPage-1)*MaxLimit, p.Offset())
}

func TestNewPage_NilItems(t *testing.T) {
	pg := NewPage[int](nil, New(1, 10), 0)
	assert.NotNil(t, pg.Data)
	assert.Len(t, pg.Data, 0)
}

func TestMap(t *testing.T) {
	pg := NewPage([]int{1, 2}, New(2, 2), 4)
	out := Map(pg, func(i int) string { return string(rune('a' + i)) })
	assert.Equal(t, []string{"b", "c"}, out.Data)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, int64(4), out.Total)
}
