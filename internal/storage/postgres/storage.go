package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses; tests substitute it.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type couponRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Coupons() repository.CouponRepository {
	return &couponRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            avatar TEXT NOT NULL DEFAULT '',
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL,
            price BIGINT NOT NULL,
            image TEXT NOT NULL,
            category TEXT NOT NULL,
            is_veg BOOLEAN NOT NULL DEFAULT TRUE,
            is_bestseller BOOLEAN NOT NULL DEFAULT FALSE,
            rating DOUBLE PRECISION NOT NULL DEFAULT 4.5,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS coupons (
            id SERIAL PRIMARY KEY,
            code TEXT UNIQUE NOT NULL,
            discount_type TEXT NOT NULL,
            discount_value DOUBLE PRECISION NOT NULL,
            min_order_value BIGINT NOT NULL DEFAULT 0,
            max_discount BIGINT NOT NULL DEFAULT 0,
            valid_from TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            valid_until TIMESTAMPTZ NOT NULL,
            usage_limit INT NOT NULL DEFAULT 100,
            used_count INT NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CHECK (usage_limit = 0 OR used_count <= usage_limit)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            items JSONB NOT NULL,
            shipping_address TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            payment_result JSONB,
            coupon_code TEXT NOT NULL DEFAULT '',
            discount BIGINT NOT NULL DEFAULT 0,
            total_amount BIGINT NOT NULL,
            status TEXT NOT NULL,
            is_paid BOOLEAN NOT NULL DEFAULT FALSE,
            paid_at TIMESTAMPTZ,
            is_delivered BOOLEAN NOT NULL DEFAULT FALSE,
            delivered_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash, role, avatar, phone, address)
                   VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Avatar, user.Phone, user.Address,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

const userColumns = `id, name, email, password_hash, role, avatar, phone, address, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &u.Phone, &u.Address, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `UPDATE users SET name=$1, email=$2, password_hash=$3, role=$4, avatar=$5, phone=$6, address=$7
                   WHERE id=$8`
	tag, err := r.storage.pool.Exec(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Avatar, user.Phone, user.Address, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, price, image, category, is_veg, is_bestseller, rating, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&p.IsVeg, &p.IsBestseller, &p.Rating, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, image, category, is_veg, is_bestseller, rating)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Image, product.Category,
		product.IsVeg, product.IsBestseller, product.Rating,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
			&p.IsVeg, &p.IsBestseller, &p.Rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products SET name=$1, description=$2, price=$3, image=$4, category=$5,
                   is_veg=$6, is_bestseller=$7, rating=$8, updated_at=NOW() WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Image, product.Category,
		product.IsVeg, product.IsBestseller, product.Rating, product.ID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CouponRepository implementation ---

const couponColumns = `id, code, discount_type, discount_value, min_order_value, max_discount,
                       valid_from, valid_until, usage_limit, used_count, is_active, created_at, updated_at`

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderValue, &c.MaxDiscount,
		&c.ValidFrom, &c.ValidUntil, &c.UsageLimit, &c.UsedCount, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *couponRepository) Create(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	const query = `INSERT INTO coupons (code, discount_type, discount_value, min_order_value, max_discount,
                   valid_from, valid_until, usage_limit, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		coupon.Code, coupon.DiscountType, coupon.DiscountValue, coupon.MinOrderValue, coupon.MaxDiscount,
		coupon.ValidFrom, coupon.ValidUntil, coupon.UsageLimit, coupon.IsActive,
	).Scan(&coupon.ID, &coupon.CreatedAt, &coupon.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return coupon, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons WHERE code=$1`
	return scanCoupon(r.storage.pool.QueryRow(ctx, query, code))
}

func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	const query = `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinOrderValue, &c.MaxDiscount,
			&c.ValidFrom, &c.ValidUntil, &c.UsageLimit, &c.UsedCount, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *couponRepository) Toggle(ctx context.Context, id int64) (*model.Coupon, error) {
	const query = `UPDATE coupons SET is_active = NOT is_active, updated_at=NOW() WHERE id=$1
                   RETURNING ` + couponColumns
	return scanCoupon(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *couponRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM coupons WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- OrderRepository implementation ---

// redeemCouponQuery is the atomic conditional increment: it only succeeds
// while the usage limit has headroom, so concurrent checkouts can never
// over-redeem a coupon.
const redeemCouponQuery = `UPDATE coupons SET used_count = used_count + 1, updated_at=NOW()
                           WHERE code=$1 AND is_active AND (usage_limit = 0 OR used_count < usage_limit)`

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}
	var payment []byte
	if order.PaymentResult != nil {
		if payment, err = json.Marshal(order.PaymentResult); err != nil {
			return nil, err
		}
	}

	err = r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if order.CouponCode != "" {
			tag, err := tx.Exec(ctx, redeemCouponQuery, order.CouponCode)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrCouponLimitReached
			}
		}

		const insertQuery = `INSERT INTO orders (user_id, items, shipping_address, payment_method, payment_result,
                             coupon_code, discount, total_amount, status, is_paid, paid_at)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                             RETURNING id, created_at, updated_at`
		return tx.QueryRow(ctx, insertQuery,
			order.UserID, items, order.ShippingAddress, order.PaymentMethod, payment,
			order.CouponCode, order.Discount, order.TotalAmount, order.Status, order.IsPaid, order.PaidAt,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

const orderColumns = `id, user_id, items, shipping_address, payment_method, payment_result,
                      coupon_code, discount, total_amount, status, is_paid, paid_at,
                      is_delivered, delivered_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o       model.Order
		items   []byte
		payment []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &items, &o.ShippingAddress, &o.PaymentMethod, &payment,
		&o.CouponCode, &o.Discount, &o.TotalAmount, &o.Status, &o.IsPaid, &o.PaidAt,
		&o.IsDelivered, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if len(payment) > 0 {
		o.PaymentResult = &model.PaymentResult{}
		if err := json.Unmarshal(payment, o.PaymentResult); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) collect(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders SET status=$1, is_paid=$2, paid_at=$3, is_delivered=$4, delivered_at=$5,
                   updated_at=NOW() WHERE id=$6`
	tag, err := r.storage.pool.Exec(ctx, query,
		order.Status, order.IsPaid, order.PaidAt, order.IsDelivered, order.DeliveredAt, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) SelectStaleOnline(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders
                   WHERE payment_method='Online' AND is_paid=FALSE AND status='Placed' AND created_at < $1
                   ORDER BY created_at LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, time.Now().Add(-olderThan), limit)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *orderRepository) Stats(ctx context.Context) (*model.AdminStats, error) {
	const totalsQuery = `SELECT COUNT(*),
                         COALESCE(SUM(total_amount) FILTER (WHERE is_paid OR status='Delivered'), 0),
                         COUNT(*) FILTER (WHERE status IN ('Placed', 'Preparing', 'Out_for_delivery')),
                         COUNT(*) FILTER (WHERE status='Delivered')
                         FROM orders`

	var stats model.AdminStats
	err := r.storage.pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalOrders, &stats.TotalRevenue, &stats.PendingOrders, &stats.CompletedOrders)
	if err != nil {
		return nil, err
	}

	const dailyQuery = `SELECT to_char(created_at, 'YYYY-MM-DD') AS day,
                        COUNT(*),
                        COALESCE(SUM(total_amount) FILTER (WHERE is_paid OR status='Delivered'), 0)
                        FROM orders WHERE created_at >= $1 GROUP BY day ORDER BY day`

	since := time.Now().AddDate(0, 0, -7).Truncate(24 * time.Hour)
	rows, err := r.storage.pool.Query(ctx, dailyQuery, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d model.DailyStat
		if err := rows.Scan(&d.Date, &d.Orders, &d.Revenue); err != nil {
			return nil, err
		}
		stats.Daily = append(stats.Daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
