package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type accountRepo struct {
	accountCollection *mongo.Collection
}

// CreateAccountRepo binds the repo to the account collection and installs the
// unique username index, so concurrent registrations cannot both succeed.
func CreateAccountRepo(ctx context.Context, client *mongo.Client) (domain.AccountRepo, error) {
	accountCollection := client.Database("account").Collection("account")

	_, err := accountCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create username index failed")
	}

	return &accountRepo{
		accountCollection: accountCollection,
	}, nil
}

func (a *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	if _, err := a.accountCollection.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if isDuplicateOfIndex(err, "username") {
				return errors.Wrap(domain.ErrAccountUsernameExists, err.Error())
			}
			return errors.Wrap(domain.ErrAccountEmailExists, err.Error())
		}
		return errors.Wrap(err, "insert account failed")
	}

	return nil
}

// isDuplicateOfIndex matches on the failing index name, the dup key value may
// itself contain the other index's name (an email like "myusername@x.com").
func isDuplicateOfIndex(err error, index string) bool {
	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, writeError := range writeException.WriteErrors {
			if strings.Contains(writeError.Message, "index: "+index) {
				return true
			}
		}
		return false
	}
	return strings.Contains(err.Error(), "index: "+index)
}

func (a *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := a.accountCollection.FindOne(ctx, bson.D{{Key: "_id", Value: email}}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(domain.ErrAccountNotFound, "email: "+email)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account by email failed")
	}
	return &account, nil
}

func (a *accountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	err := a.accountCollection.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&account)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(domain.ErrAccountNotFound, "username: "+username)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account by username failed")
	}
	return &account, nil
}

func (a *accountRepo) UpdateRefreshToken(ctx context.Context, email string, refreshToken *string) error {
	result, err := a.accountCollection.UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "refresh_token", Value: refreshToken},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	if err != nil {
		return errors.Wrap(err, "update refresh token failed")
	}
	if result.MatchedCount == 0 {
		return errors.Wrap(domain.ErrAccountNotFound, "email: "+email)
	}
	return nil
}
