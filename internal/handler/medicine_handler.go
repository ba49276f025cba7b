package handler

import (
	"net/http"
	"strconv"
	"time"

	"pharmacy/internal/config"
	"pharmacy/internal/middleware"
	"pharmacy/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// AuthJWTが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok {
		return 0, false
	}

	return id, true
}

// /medicines のHTTP。一覧は公開、作成・更新・削除はADMINのみ。
type MedicineHandler struct {
	uc *usecase.MedicineUsecase
}

// DI
func NewMedicineHandler(uc *usecase.MedicineUsecase) *MedicineHandler {
	return &MedicineHandler{uc: uc}
}

// ダッシュボードのフォームは日付を文字列で送ってくる
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

func (h *MedicineHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/medicines", h.list)

	adminOnly := []echo.MiddlewareFunc{middleware.AuthJWT(cfg), middleware.AdminRoleGuard()}
	e.POST("/medicines", h.create, adminOnly...)
	e.PUT("/medicines/:id", h.update, adminOnly...)
	e.DELETE("/medicines/:id", h.delete, adminOnly...)
}

func (h *MedicineHandler) list(c echo.Context) error {
	out, err := h.uc.ListMedicines(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MedicineHandler) create(c echo.Context) error {
	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in, err := toMedicineInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	out, err := h.uc.CreateMedicine(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *MedicineHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req MedicineRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	in, err := toMedicineInput(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}

	out, err := h.uc.UpdateMedicine(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MedicineHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteMedicine(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "medicine deleted successfully"})
}

func toMedicineInput(req MedicineRequest) (usecase.MedicineInput, error) {
	manufacturing, err := parseDate(req.Manufacturing)
	if err != nil {
		return usecase.MedicineInput{}, err
	}
	expiry, err := parseDate(req.Expiry)
	if err != nil {
		return usecase.MedicineInput{}, err
	}

	return usecase.MedicineInput{
		Name:          req.Name,
		Company:       req.Company,
		Salt:          req.Salt,
		Manufacturing: manufacturing,
		Expiry:        expiry,
		Price:         req.Price,
		Stock:         req.Stock,
		Image:         req.Image,
		Category:      req.Category,
	}, nil
}

// フォームのdate入力（YYYY-MM-DD）とRFC3339の両方を受ける
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
