package account

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"playfield/models"
)

type stubAccountRepo struct {
	accounts map[string]*models.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*models.Account)}
}

func (r *stubAccountRepo) GetByID(id string) (*models.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) GetByTokenHash(tokenHash string) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.TokenHash == tokenHash {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) GetAll() ([]models.Account, error) { return nil, nil }

func (r *stubAccountRepo) Create(account *models.Account) error {
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *stubAccountRepo) Update(account *models.Account) error { return nil }

func (r *stubAccountRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	a, ok := r.accounts[id]
	if !ok {
		return errors.New("not found")
	}
	if v, ok := updateDoc["tokenHash"].(string); ok {
		a.TokenHash = v
	}
	if v, ok := updateDoc["passwordHash"].(string); ok {
		a.PasswordHash = v
	}
	if v, ok := updateDoc["fcmToken"].(string); ok {
		a.FCMToken = v
	}
	return nil
}

func (r *stubAccountRepo) Delete(id string) error {
	delete(r.accounts, id)
	return nil
}

func accountErrCode(t *testing.T, err error) string {
	t.Helper()
	var ae *AccountError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AccountError, got %v", err)
	}
	return ae.Code
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(models.Account{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" || resp.ID == "" {
		t.Fatalf("incomplete auth response: %+v", resp)
	}
	if resp.Role != models.RoleUser {
		t.Fatalf("default role = %s, want user", resp.Role)
	}

	stored := repo.accounts[resp.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "hunter22" {
		t.Fatal("password must be stored hashed")
	}
	if stored.Password != "" {
		t.Fatal("plaintext password must not be persisted")
	}
	if stored.TokenHash == "" {
		t.Fatal("token hash must be stored")
	}

	auth, err := svc.Authenticate("ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if auth.ID != resp.ID {
		t.Fatalf("authenticated as %s, want %s", auth.ID, resp.ID)
	}

	_, err = svc.Authenticate("ada@example.com", "wrong")
	if code := accountErrCode(t, err); code != CodeUnauthorized {
		t.Fatalf("wrong password: code = %s, want %s", code, CodeUnauthorized)
	}
	_, err = svc.Authenticate("nobody@example.com", "hunter22")
	if code := accountErrCode(t, err); code != CodeUnauthorized {
		t.Fatalf("unknown email: code = %s, want %s", code, CodeUnauthorized)
	}
}

func TestRegisterGuards(t *testing.T) {
	repo := newStubAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	if _, err := svc.Register(models.Account{Email: "x@example.com"}); err == nil {
		t.Fatal("expected error for missing password")
	}

	if _, err := svc.Register(models.Account{
		Name: "Eve", Email: "eve@example.com", Password: "pw", Role: models.RoleSuperAdmin,
	}); err == nil {
		t.Fatal("self-assigned superadmin must be rejected")
	}

	if _, err := svc.Register(models.Account{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	_, err := svc.Register(models.Account{
		Name: "Ada Again", Email: "ada@example.com", Password: "pw2",
	})
	if code := accountErrCode(t, err); code != CodeConflict {
		t.Fatalf("duplicate email: code = %s, want %s", code, CodeConflict)
	}
}

func TestChangePasswordRevokesToken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(models.Account{
		Name: "Ada", Email: "ada@example.com", Password: "oldpass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := svc.ChangePassword(resp.ID, "wrong", "newpass"); err == nil {
		t.Fatal("expected error for wrong current password")
	}
	if err := svc.ChangePassword(resp.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if repo.accounts[resp.ID].TokenHash != "" {
		t.Fatal("token must be revoked on password change")
	}

	if _, err := svc.Authenticate("ada@example.com", "oldpass"); err == nil {
		t.Fatal("old password still accepted")
	}
	if _, err := svc.Authenticate("ada@example.com", "newpass"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
}

func TestRevokeToken(t *testing.T) {
	repo := newStubAccountRepo()
	svc := &DefaultAccountService{Repo: repo}

	resp, err := svc.Register(models.Account{
		Name: "Ada", Email: "ada@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := svc.RevokeToken(resp.ID); err != nil {
		t.Fatalf("RevokeToken failed: %v", err)
	}
	if repo.accounts[resp.ID].TokenHash != "" {
		t.Fatal("token hash not cleared")
	}
}
