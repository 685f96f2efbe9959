package handlers

import (
	"net/http"
	"testing"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutes(t *testing.T) {
	s := newTestServer(t)
	admin := sessionCookie(t, superAdmin())

	w := s.do(t, http.MethodGet, "/api/admin/merchants", nil, sessionCookie(t, ownerOf("m1")))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/merchants", map[string]string{
		"code":     "kopi-kita",
		"name":     "Kopi Kita",
		"timezone": "Asia/Makassar",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Merchant
	decode(t, w, &created)
	assert.Equal(t, "KOPI-KITA", created.Code)
	assert.True(t, created.IsDineInEnabled)
	assert.False(t, created.IsDeliveryEnabled)

	w = s.do(t, http.MethodPost, "/api/admin/merchants", map[string]string{"code": "KOPI-KITA", "name": "Again"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/admin/merchants", map[string]string{"code": "NONAME"}, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var merchants []models.Merchant
	w = s.do(t, http.MethodGet, "/api/admin/merchants", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &merchants)
	assert.Len(t, merchants, 1)

	w = s.do(t, http.MethodPost, "/api/admin/merchants/"+created.ID+"/deactivate", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/public/merchants/KOPI-KITA/status", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "deactivated merchants are hidden")

	w = s.do(t, http.MethodPost, "/api/admin/merchants/missing/deactivate", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/admin/workers", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"workers":{"status-snapshot-1":true}}`, w.Body.String())
}
