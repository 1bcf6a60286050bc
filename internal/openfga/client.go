// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"fmt"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
)

type Config struct {
	ApiScheme   string
	ApiHost     string
	StoreID     string
	ApiToken    string
	AuthModelID string
	Debug       bool

	Tracer  tracing.TracingInterface
	Monitor monitoring.MonitorInterface
	Logger  logging.LoggerInterface
}

func NewConfig(apiScheme, apiHost, storeID, apiToken, authModelID string, debug bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.ApiScheme = apiScheme
	c.ApiHost = apiHost
	c.StoreID = storeID
	c.ApiToken = apiToken
	c.AuthModelID = authModelID
	c.Debug = debug

	c.Tracer = tracer
	c.Monitor = monitor
	c.Logger = logger

	return c
}

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg *Config) *Client {
	if cfg == nil {
		panic("OpenFGA config missing")
	}

	fgaClient, err := client.NewSdkClient(
		&client.ClientConfiguration{
			ApiUrl:               fmt.Sprintf("%s://%s", cfg.ApiScheme, cfg.ApiHost),
			StoreId:              cfg.StoreID,
			AuthorizationModelId: cfg.AuthModelID,
			Credentials: &credentials.Credentials{
				Method: credentials.CredentialsMethodApiToken,
				Config: &credentials.Config{
					ApiToken: cfg.ApiToken,
				},
			},
			Debug: cfg.Debug,
		},
	)
	if err != nil {
		panic(fmt.Sprintf("issues setting up OpenFGA client: %s", err))
	}

	c := new(Client)
	c.c = fgaClient

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	return c
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).
		Body(
			client.ClientListObjectsRequest{
				User:     user,
				Relation: relation,
				Type:     objectType,
			},
		).
		Execute()
	if err != nil {
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		cts := make([]client.ClientContextualTupleKey, len(contextualTuples))
		for i, t := range contextualTuples {
			cts[i] = client.ClientContextualTupleKey{User: t.User, Relation: t.Relation, Object: t.Object}
		}
		body.ContextualTuples = cts
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := c.c.ReadLatestAuthorizationModel(ctx).Execute()
	if err != nil {
		return nil, err
	}

	return r.AuthorizationModel, nil
}

// CompareModel reports whether the latest model in the store matches the
// passed one, ignoring the server assigned model ID.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	readModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}
	if readModel == nil {
		return false, nil
	}

	if readModel.SchemaVersion != model.SchemaVersion {
		return false, nil
	}
	if !reflect.DeepEqual(readModel.TypeDefinitions, model.TypeDefinitions) {
		return false, nil
	}

	return true, nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		return "", err
	}

	return r.AuthorizationModelId, nil
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	opts := client.ClientReadOptions{}
	if continuationToken != "" {
		opts.ContinuationToken = &continuationToken
	}

	return c.c.Read(ctx).Body(body).Options(opts).Execute()
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	body := make([]client.ClientTupleKey, len(tuples))
	for i, t := range tuples {
		body[i] = client.ClientTupleKey{User: t.User, Relation: t.Relation, Object: t.Object}
	}

	_, err := c.c.WriteTuples(ctx).Body(body).Execute()

	return err
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	body := make([]client.ClientTupleKeyWithoutCondition, len(tuples))
	for i, t := range tuples {
		body[i] = client.ClientTupleKeyWithoutCondition{User: t.User, Relation: t.Relation, Object: t.Object}
	}

	_, err := c.c.DeleteTuples(ctx).Body(body).Execute()

	return err
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).
		Body(client.ClientCreateStoreRequest{Name: name}).
		Execute()
	if err != nil {
		return "", err
	}

	return r.Id, nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	c.c.SetStoreId(storeID)
}
