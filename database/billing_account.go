package database

import (
    "context"
    "database/sql"
    "fmt"
    "log"
    "strings"
    "time"

    "github.com/google/uuid"

    "payment-authorizenet-api/types"
)

// Account is a billing account row. It carries the two gateway profile ID
// columns alongside the stored billing address, and satisfies
// models.BillingAccount so the payment service can attach customer profiles
// to it.
type Account struct {
    ID          int       `json:"id"`
    ReferenceID string    `json:"reference"`
    Email       string    `json:"email"`
    FirstName   string    `json:"first_name"`
    LastName    string    `json:"last_name"`
    CompanyName string    `json:"company_name"`
    Address     string    `json:"address"`
    Address2    string    `json:"address2"`
    City        string    `json:"city"`
    State       string    `json:"state"`
    ZipCode     string    `json:"zip_code"`
    Phone       string    `json:"phone"`
    ProfileID   int64     `json:"customer_profile_id"`
    PaymentID   int64     `json:"default_payment_profile_id"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`

    conn *Connection
}

func (a *Account) Reference() string {
    return a.ReferenceID
}

func (a *Account) DisplayName() string {
    if a.CompanyName != "" {
        return a.CompanyName
    }
    return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *Account) CustomerProfileID() int64 {
    return a.ProfileID
}

func (a *Account) SetCustomerProfileID(id int64) {
    a.ProfileID = id
}

func (a *Account) DefaultPaymentProfileID() int64 {
    return a.PaymentID
}

func (a *Account) SetDefaultPaymentProfileID(id int64) {
    a.PaymentID = id
}

func (a *Account) ContactInfo() (types.ContactInfo, bool) {
    if a.Address == "" || a.City == "" || a.State == "" || a.ZipCode == "" {
        return types.ContactInfo{}, false
    }

    address := a.Address
    if a.Address2 != "" {
        address = address + ", " + a.Address2
    }

    return types.ContactInfo{
        Address: address,
        City:    a.City,
        State:   a.State,
        ZipCode: a.ZipCode,
        Phone:   a.Phone,
    }, true
}

// Save persists the two gateway profile ID columns. Zero IDs are stored as
// NULL so cleared profiles do not linger as stale numbers.
func (a *Account) Save(ctx context.Context) error {
    if a.conn == nil {
        return fmt.Errorf("account %s is not attached to a database connection", a.ReferenceID)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := `
        UPDATE billing_accounts
        SET authorizenet_customer_profile_id = NULLIF(?, 0),
            authorizenet_default_payment_profile_id = NULLIF(?, 0),
            updated_at = NOW()
        WHERE reference = ?
    `

    result, err := a.conn.db.ExecContext(ctx, query, a.ProfileID, a.PaymentID, a.ReferenceID)
    if err != nil {
        log.Printf("Error saving billing account %s: %v", a.ReferenceID, err)
        return fmt.Errorf("error saving billing account: %v", err)
    }

    if _, err := result.RowsAffected(); err != nil {
        return fmt.Errorf("error getting rows affected: %v", err)
    }

    return nil
}

// Refresh re-reads the gateway profile ID columns from the database.
func (a *Account) Refresh(ctx context.Context) error {
    if a.conn == nil {
        return fmt.Errorf("account %s is not attached to a database connection", a.ReferenceID)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := `
        SELECT COALESCE(authorizenet_customer_profile_id, 0),
               COALESCE(authorizenet_default_payment_profile_id, 0)
        FROM billing_accounts
        WHERE reference = ?
    `

    err := a.conn.db.QueryRowContext(ctx, query, a.ReferenceID).Scan(&a.ProfileID, &a.PaymentID)
    if err != nil {
        if err == sql.ErrNoRows {
            return fmt.Errorf("no billing account found for reference: %s", a.ReferenceID)
        }
        log.Printf("Error refreshing billing account %s: %v", a.ReferenceID, err)
        return fmt.Errorf("error refreshing billing account: %v", err)
    }

    return nil
}

const accountColumns = `
    id, reference, email, first_name, last_name, company_name,
    address, COALESCE(address2, ''), city, state, zip_code, COALESCE(phone, ''),
    COALESCE(authorizenet_customer_profile_id, 0),
    COALESCE(authorizenet_default_payment_profile_id, 0),
    created_at, updated_at
`

func (c *Connection) scanAccount(row *sql.Row) (*Account, error) {
    var a Account
    err := row.Scan(
        &a.ID,
        &a.ReferenceID,
        &a.Email,
        &a.FirstName,
        &a.LastName,
        &a.CompanyName,
        &a.Address,
        &a.Address2,
        &a.City,
        &a.State,
        &a.ZipCode,
        &a.Phone,
        &a.ProfileID,
        &a.PaymentID,
        &a.CreatedAt,
        &a.UpdatedAt,
    )
    if err != nil {
        return nil, err
    }
    a.conn = c
    return &a, nil
}

// GetAccountByReference busca uma billing account pelo reference UUID.
func (c *Connection) GetAccountByReference(ctx context.Context, reference string) (*Account, error) {
    if err := c.ensureConnection(); err != nil {
        return nil, fmt.Errorf("database connection check failed: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := fmt.Sprintf(`SELECT %s FROM billing_accounts WHERE reference = ?`, accountColumns)

    account, err := c.scanAccount(c.db.QueryRowContext(ctx, query, reference))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, fmt.Errorf("no billing account found for reference: %s", reference)
        }
        log.Printf("Error getting billing account: %v", err)
        return nil, fmt.Errorf("error getting billing account: %v", err)
    }

    return account, nil
}

// GetAccountByEmail busca uma billing account pelo email.
func (c *Connection) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
    if err := c.ensureConnection(); err != nil {
        return nil, fmt.Errorf("database connection check failed: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := fmt.Sprintf(`SELECT %s FROM billing_accounts WHERE email = ?`, accountColumns)

    account, err := c.scanAccount(c.db.QueryRowContext(ctx, query, email))
    if err != nil {
        if err == sql.ErrNoRows {
            return nil, fmt.Errorf("no billing account found for email: %s", email)
        }
        log.Printf("Error getting billing account by email: %v", err)
        return nil, fmt.Errorf("error getting billing account by email: %v", err)
    }

    return account, nil
}

// CreateAccount insere uma nova billing account com um reference UUID gerado.
func (c *Connection) CreateAccount(ctx context.Context, a *Account) error {
    if err := c.ensureConnection(); err != nil {
        return fmt.Errorf("database connection check failed: %v", err)
    }

    if a.ReferenceID == "" {
        a.ReferenceID = uuid.New().String()
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := `
        INSERT INTO billing_accounts
        (reference, email, first_name, last_name, company_name,
         address, address2, city, state, zip_code, phone, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
    `

    result, err := c.db.ExecContext(ctx, query,
        a.ReferenceID, a.Email, a.FirstName, a.LastName, a.CompanyName,
        a.Address, a.Address2, a.City, a.State, a.ZipCode, a.Phone)
    if err != nil {
        log.Printf("Error creating billing account: %v", err)
        return fmt.Errorf("error creating billing account: %v", err)
    }

    id, err := result.LastInsertId()
    if err != nil {
        return fmt.Errorf("error getting inserted account id: %v", err)
    }

    a.ID = int(id)
    a.conn = c

    log.Printf("Created billing account %s", a.ReferenceID)
    return nil
}

// ListAccounts lista billing accounts (para admin/debug).
func (c *Connection) ListAccounts(ctx context.Context, limit, offset int) ([]Account, error) {
    if err := c.ensureConnection(); err != nil {
        return nil, fmt.Errorf("database connection check failed: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    query := fmt.Sprintf(`
        SELECT %s FROM billing_accounts
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?
    `, accountColumns)

    rows, err := c.db.QueryContext(ctx, query, limit, offset)
    if err != nil {
        log.Printf("Error listing billing accounts: %v", err)
        return nil, fmt.Errorf("error listing billing accounts: %v", err)
    }
    defer rows.Close()

    var accounts []Account
    for rows.Next() {
        var a Account
        err := rows.Scan(
            &a.ID,
            &a.ReferenceID,
            &a.Email,
            &a.FirstName,
            &a.LastName,
            &a.CompanyName,
            &a.Address,
            &a.Address2,
            &a.City,
            &a.State,
            &a.ZipCode,
            &a.Phone,
            &a.ProfileID,
            &a.PaymentID,
            &a.CreatedAt,
            &a.UpdatedAt,
        )
        if err != nil {
            log.Printf("Error scanning billing account row: %v", err)
            continue
        }
        a.conn = c
        accounts = append(accounts, a)
    }

    if err = rows.Err(); err != nil {
        return nil, fmt.Errorf("error iterating billing account rows: %v", err)
    }

    return accounts, nil
}

// CountAccounts conta o total de billing accounts.
func (c *Connection) CountAccounts(ctx context.Context) (int, error) {
    if err := c.ensureConnection(); err != nil {
        return 0, fmt.Errorf("database connection check failed: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
    defer cancel()

    var count int
    err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM billing_accounts`).Scan(&count)
    if err != nil {
        log.Printf("Error counting billing accounts: %v", err)
        return 0, fmt.Errorf("error counting billing accounts: %v", err)
    }

    return count, nil
}

// GetAccountStats retorna estatísticas das billing accounts.
func (c *Connection) GetAccountStats(ctx context.Context) (map[string]interface{}, error) {
    if err := c.ensureConnection(); err != nil {
        return nil, fmt.Errorf("database connection check failed: %v", err)
    }

    ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
    defer cancel()

    stats := make(map[string]interface{})

    var total int
    err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM billing_accounts").Scan(&total)
    if err != nil {
        return nil, fmt.Errorf("error getting total accounts count: %v", err)
    }
    stats["total_accounts"] = total

    var withProfile int
    err = c.db.QueryRowContext(ctx,
        "SELECT COUNT(*) FROM billing_accounts WHERE authorizenet_customer_profile_id IS NOT NULL").Scan(&withProfile)
    if err != nil {
        return nil, fmt.Errorf("error getting accounts with profile count: %v", err)
    }
    stats["accounts_with_customer_profile"] = withProfile

    var withDefault int
    err = c.db.QueryRowContext(ctx,
        "SELECT COUNT(*) FROM billing_accounts WHERE authorizenet_default_payment_profile_id IS NOT NULL").Scan(&withDefault)
    if err != nil {
        return nil, fmt.Errorf("error getting accounts with default payment count: %v", err)
    }
    stats["accounts_with_default_payment_profile"] = withDefault

    var createdToday int
    err = c.db.QueryRowContext(ctx,
        "SELECT COUNT(*) FROM billing_accounts WHERE DATE(created_at) = CURDATE()").Scan(&createdToday)
    if err != nil {
        return nil, fmt.Errorf("error getting today's accounts count: %v", err)
    }
    stats["accounts_created_today"] = createdToday

    log.Printf("Billing account stats: %+v", stats)
    return stats, nil
}
