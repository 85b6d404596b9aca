package memory

import (
	"context"

	"github.com/benweissmann/memongo"
	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/kit/testing"
)

type mongodbContainer struct {
	uri    string
	server *memongo.Server
}

func CreateMongoDB() (testing.MongoDBContainer, error) {
	mongoServer, err := memongo.Start("4.0.5")
	if err != nil {
		return nil, errors.Wrap(err, "start failed")
	}

	return &mongodbContainer{
		uri:    mongoServer.URI(),
		server: mongoServer,
	}, nil
}

func (m *mongodbContainer) GetURI() string {
	return m.uri
}

func (m *mongodbContainer) Terminate(context.Context) error {
	m.server.Stop()
	return nil
}
