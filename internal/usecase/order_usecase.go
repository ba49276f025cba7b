package usecase

import (
	"context"
	"net/http"
	"time"

	"pharmacy/internal/domain/model"
	repo "pharmacy/internal/repository"
)

// OrderUsecase は注文確定（カート→注文の変換）と本人の注文照会。
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	MedicineID int64  `json:"medicineId"`
	Name       string `json:"name"`
	Quantity   int64  `json:"quantity"`

	//確定時点で凍結された単価
	Price float64 `json:"price"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	UserID      int64             `json:"user_id"`
	Status      string            `json:"status"`
	TotalAmount float64           `json:"totalAmount"`
	Address     model.Address     `json:"address"`
	CreatedAt   time.Time         `json:"date"`
	Items       []OrderItemOutput `json:"items"`
}

// Checkout はユーザーの現在のカートをそのまま注文に変換する。
// リクエストボディは無く、入力はユーザーIDだけ。
//
//  1. カートを読む（無ければ404。前回の確定で消費済みの場合も含む）
//  2. 明細ごとにカタログの「今の」単価を取る
//  3. total = Σ(数量 × 現在単価)
//  4. 注文を保存（status=Pending、住所コピー、確定時刻）
//  5. カートを丸ごと削除
//
// 全手順を1トランザクションで包む。注文だけ残ってカートが消えない
// 中途半端は起きない。二重確定はカートが消えていることで404になる
// （リクエストレベルの重複排除は無い）。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート取得
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート明細取得
		cartItems, err := r.Carts().ListItems(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//現在価格でスナップショットを作る。在庫は減らさない。
		//明細0件のカートも合計0の注文としてそのまま確定する。
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		outItems := make([]OrderItemOutput, 0, len(cartItems))
		var total float64 = 0

		now := time.Now()
		for _, ci := range cartItems {
			m, err := r.Medicines().FindByID(ctx, ci.MedicineID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "medicine not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			orderItems = append(orderItems, model.OrderItem{
				MedicineID: ci.MedicineID,
				Quantity:   ci.Quantity,
				UnitPrice:  m.Price,
				CreatedAt:  now,
			})
			outItems = append(outItems, OrderItemOutput{
				MedicineID: ci.MedicineID,
				Name:       m.Name,
				Quantity:   ci.Quantity,
				Price:      m.Price,
			})

			total += float64(ci.Quantity) * m.Price
		}

		// 注文作成
		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:      userID,
			TotalAmount: total,
			Status:      model.OrderStatusPending,
			Address:     cart.Address,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを丸ごと削除（明細ごと）
		if err := r.Carts().DeleteByID(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderOutput{
			ID:          orderID,
			UserID:      userID,
			Status:      model.OrderStatusPending,
			TotalAmount: total,
			Address:     cart.Address,
			CreatedAt:   now,
			Items:       outItems,
		}
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ListMyOrders は本人の注文のみ、新しい順で返す。
// 商品名は今のカタログから解決する（価格は注文側の凍結値）。
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(ctx, r, o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// 注文＋明細を出力DTOへ。商品名の解決に失敗した明細は名前空欄のまま返す
// （historyから商品が消えても注文は読めるようにする）。
func toOrderOutput(ctx context.Context, r repo.TxRepos, o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		name := ""
		if m, err := r.Medicines().FindByID(ctx, it.MedicineID); err == nil {
			name = m.Name
		}
		outItems = append(outItems, OrderItemOutput{
			MedicineID: it.MedicineID,
			Name:       name,
			Quantity:   it.Quantity,
			Price:      it.UnitPrice,
		})
	}

	return OrderOutput{
		ID:          o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Address:     o.Address,
		CreatedAt:   o.CreatedAt,
		Items:       outItems,
	}
}
