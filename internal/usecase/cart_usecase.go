package usecase

import (
	"context"
	"net/http"

	"pharmacy/internal/domain/model"
	repo "pharmacy/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// カートには価格を持たせず、表示にも確定にも常にカタログの現在価格を使う。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	medicineRepo repo.MedicineRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	medicineRepo repo.MedicineRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		medicineRepo: medicineRepo,
	}
}

// price はカタログの現在価格（スナップショットではない）。
type CartItemResponse struct {
	ID         int64   `json:"id"`
	MedicineID int64   `json:"medicineId"`
	Name       string  `json:"name"`
	Company    string  `json:"company"`
	Price      float64 `json:"price"`
	Quantity   int64   `json:"quantity"`
	Image      string  `json:"image"`
}

type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Address model.Address      `json:"address"`
	Total   float64            `json:"total"`
}

type AddCartInput struct {
	MedicineID int64
	//符号付きの差分。フロントは減算も同じ口で送ってくる。
	Quantity int64
}

type SetAddressInput struct {
	Street         string
	City           string
	State          string
	Pincode        string
	NearbyLocation string
}

// GetCart はカート取得。まだ無ければ空表現を返す（作りはしない）。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return emptyCartResponse(), nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

// AddItem はカートに追加（同一商品は数量加算）。
// 数量は符号付きで、負のdeltaによる減算も同じ経路。下限ガードは置かない。
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.MedicineID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid medicineId")
	}

	// 商品の存在チェック（価格はここでは保存しない）
	if _, err := u.medicineRepo.FindByID(ctx, in.MedicineID); err != nil {
		if err == repo.ErrNotFound {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "medicine not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// カート取得（無ければ作成）
	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// Upsert（同一商品は加算）
	if err := u.cartRepo.UpsertItem(ctx, cart.ID, in.MedicineID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildCartResponse(ctx, cart)
}

// RemoveItem は商品指定で明細を削除。
// カートが無い・明細が無い場合もエラーにしない（no-op）。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, medicineID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if medicineID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid medicineId")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.cartRepo.RemoveItemByMedicine(ctx, cart.ID, medicineID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// SetAddress は住所サブレコードを丸ごと置き換える。
// 項目の必須チェックはしない（注文前のチェックはフロントの責務）。
// カートがまだ無ければ何もせず空表現を返す。
func (u *CartUsecase) SetAddress(ctx context.Context, userID int64, in SetAddressInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return emptyCartResponse(), nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	addr := model.Address{
		Street:         in.Street,
		City:           in.City,
		State:          in.State,
		Pincode:        in.Pincode,
		NearbyLocation: in.NearbyLocation,
	}

	if err := u.cartRepo.UpdateAddress(ctx, cart.ID, addr); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart.Address = addr
	return u.buildCartResponse(ctx, cart)
}

// 明細にカタログの現在価格を解決してCartResponseを作る。
// カタログから消えた商品はスキップする。
func (u *CartUsecase) buildCartResponse(ctx context.Context, cart model.Cart) (CartResponse, error) {
	items, err := u.cartRepo.ListItems(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total float64 = 0

	for _, it := range items {
		m, err := u.medicineRepo.FindByID(ctx, it.MedicineID)
		if err != nil {
			continue
		}

		respItems = append(respItems, CartItemResponse{
			ID:         it.ID,
			MedicineID: it.MedicineID,
			Name:       m.Name,
			Company:    m.Company,
			Price:      m.Price,
			Quantity:   it.Quantity,
			Image:      m.Image,
		})

		total += float64(it.Quantity) * m.Price
	}

	return CartResponse{Items: respItems, Address: cart.Address, Total: total}, nil
}

func emptyCartResponse() CartResponse {
	return CartResponse{Items: []CartItemResponse{}}
}
