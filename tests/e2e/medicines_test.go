package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"
)

type MedicineDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Company       string  `json:"company"`
	Salt          string  `json:"salt"`
	Manufacturing string  `json:"manufacturing"`
	Expiry        string  `json:"expiry"`
	Price         float64 `json:"price"`
	Stock         int64   `json:"stock"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
}

type MedicineRequest struct {
	Name          string  `json:"name"`
	Company       string  `json:"company"`
	Salt          string  `json:"salt"`
	Manufacturing string  `json:"manufacturing"`
	Expiry        string  `json:"expiry"`
	Price         float64 `json:"price"`
	Stock         int64   `json:"stock"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
}

func mustDecodeMedicine(t *testing.T, body []byte) MedicineDTO {
	t.Helper()
	var v MedicineDTO
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal(MedicineDTO) failed: %v body=%s", err, string(body))
	}
	return v
}

func newMedicineRequest(name string, price float64) MedicineRequest {
	return MedicineRequest{
		Name:          name,
		Company:       "Cipla",
		Salt:          "Acetaminophen",
		Manufacturing: "2025-01-01",
		Expiry:        "2027-01-01",
		Price:         price,
		Stock:         100,
		Image:         "https://example.com/p.png",
		Category:      "fever",
	}
}

// 管理者が作った医薬品を作成→公開一覧→更新→削除まで一周する
func Test_Medicines_AdminCRUD_PublicList(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	access := adminLogin(t, c, ctx)

	uniqueName := "E2E-Paracetamol-" + time.Now().Format("20060102-150405.000000000")

	//作成（ADMINのみ）
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/medicines", access, mustMarshal(t, newMedicineRequest(uniqueName, 50)))
	requireStatus(t, resp, http.StatusCreated, body)
	created := mustDecodeMedicine(t, body)
	if created.ID == 0 {
		t.Fatalf("created medicine has no id: body=%s", string(body))
	}

	//公開一覧は認証無しで全件
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/medicines", "", nil)
	requireStatus(t, resp, http.StatusOK, body)
	var list []MedicineDTO
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("json.Unmarshal([]MedicineDTO) failed: %v body=%s", err, string(body))
	}
	found := false
	for _, m := range list {
		if m.ID == created.ID {
			found = true
			if m.Price != 50 {
				t.Fatalf("price=%v want=50", m.Price)
			}
		}
	}
	if !found {
		t.Fatalf("created medicine not in public list")
	}

	//価格を更新
	update := newMedicineRequest(uniqueName, 80)
	resp, body = c.doJSON(ctx, t, http.MethodPut, "/medicines/"+itoa(created.ID), access, mustMarshal(t, update))
	requireStatus(t, resp, http.StatusOK, body)
	updated := mustDecodeMedicine(t, body)
	if updated.Price != 80 {
		t.Fatalf("updated price=%v want=80", updated.Price)
	}

	//削除
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/medicines/"+itoa(created.ID), access, nil)
	requireStatus(t, resp, http.StatusOK, body)

	//もう一度消すと404
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/medicines/"+itoa(created.ID), access, nil)
	requireStatus(t, resp, http.StatusNotFound, body)
}

// 一般ユーザーはカタログを書き換えられない
func Test_Medicines_UserForbidden(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()
	access := registerAndLogin(t, c, ctx)

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/medicines", access, mustMarshal(t, newMedicineRequest("E2E-Forbidden", 10)))
	requireStatus(t, resp, http.StatusForbidden, body)
}
