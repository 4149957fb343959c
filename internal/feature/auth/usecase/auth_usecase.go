// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kitchensync_backend/internal/feature/auth/domain"
	"kitchensync_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// TokenTTL は発行されるセッショントークンの有効期間です。
const TokenTTL = 24 * time.Hour

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// ユーザー名またはメールアドレスが既に存在する場合、ErrDuplicateUserを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername は指定されたユーザー名に一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// 存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer はセッショントークン発行のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenIssuer interface {
	// IssueToken は指定されたユーザーの署名済みトークンを生成します。
	IssueToken(userID uint) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// costが0以下の場合はbcrypt.DefaultCostを使用します。
func NewAuthUsecase(users UserRepository, tokens TokenIssuer, cost int) *authUsecase {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &authUsecase{
		users:      users,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

// Register はハッシュ化されたパスワードで新規ユーザーを登録します。
// ユーザー名・メールアドレスの重複チェックはUX向けの先行チェックであり、
// 正当性の根拠はリポジトリ側のユニーク制約です（チェック後の競合はCreateが検出します）。
func (u *authUsecase) Register(ctx context.Context, username, email, password string) error {
	// 先行チェック: ユーザー名 → メールアドレスの順
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return domain.ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		// 先行チェックとInsertの間で競合した場合、ユニーク制約違反が最終的な判定となる
		if errors.Is(err, ErrDuplicateUser) {
			return u.resolveDuplicate(ctx, username)
		}
		return err
	}
	return nil
}

// resolveDuplicate はユニーク制約違反がユーザー名・メールアドレスの
// どちらに起因するかを判定します。ユーザー名を先に確認します。
func (u *authUsecase) resolveDuplicate(ctx context.Context, username string) error {
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return domain.ErrUsernameAlreadyExists
	}
	return domain.ErrEmailAlreadyExists
}

// Login はユーザーを認証し、成功時にセッショントークンとユーザーIDを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, uint, error) {
	user, err := u.users.FindByEmail(ctx, email)

	// ユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		passwordHash = user.Password
	}

	// ユーザー未検出とパスワード不一致は同一のエラーに収束させる
	if compareErr := VerifyPassword(password, passwordHash); err != nil || compareErr != nil {
		return "", 0, domain.ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.IssueToken(user.ID)
	if tokenErr != nil {
		return "", 0, fmt.Errorf("failed to issue token: %w", tokenErr)
	}

	return token, user.ID, nil
}

// VerifyPassword は平文パスワードが保存済みハッシュに一致するか検証します。
// 比較はbcryptライブラリの検証ルーチンに委譲します（手動のバイト比較は行いません）。
func VerifyPassword(plaintext, storedHash string) error {
	// 第1引数はハッシュ化パスワード、第2引数は平文パスワード
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext))
}
