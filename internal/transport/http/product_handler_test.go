package http

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUpdateProductRequest_Columns(t *testing.T) {
	catID := uuid.New()
	body := `{
		"name": "Banner em lona",
		"slug": "Banner em Lona",
		"active": false,
		"categoryId": "` + catID.String() + `",
		"minAreaM2": 0.5,
		"minPriceCents": 1500,
		"baseM2PriceCents": 9000,
		"baseLinearMPriceCents": 4000
	}`

	var req updateProductRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	fields := req.columns()

	// ключи карты должны быть именами колонок, а не json-полями
	require.Equal(t, map[string]any{
		"name":                      "Banner em lona",
		"slug":                      "Banner em Lona",
		"active":                    false,
		"category_id":               catID,
		"min_area_m2":               0.5,
		"min_price_cents":           int64(1500),
		"base_m2_price_cents":       int64(9000),
		"base_linear_m_price_cents": int64(4000),
	}, fields)

	// slug остаётся строкой, сервис нормализует его сам
	_, ok := fields["slug"].(string)
	require.True(t, ok)
}

func TestUpdateProductRequest_Columns_SkipsAbsentFields(t *testing.T) {
	var req updateProductRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Adesivo"}`), &req))

	fields := req.columns()
	require.Equal(t, map[string]any{"name": "Adesivo"}, fields)
}
