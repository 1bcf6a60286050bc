// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "member"
	object := "organization:456"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", "owner", "organization:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(true, nil)
			},
			expectedResult: true,
			expectedErr:    false,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, nil)
			},
			expectedResult: false,
			expectedErr:    false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, errors.New("client error"))
			},
			expectedResult: false,
			expectedErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_ListObjects(t *testing.T) {
	user := "user:123"
	relation := "member"
	objectType := "organization"
	objects := []string{"organization:1", "organization:2", "organization:3"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(objects, nil)
			},
			expectedErr: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(nil, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ListObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.ListObjects(context.Background(), user, relation, objectType)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if len(result) != len(objects) {
					t.Errorf("expected %d objects, got %d", len(objects), len(result))
				}
			}
		})
	}
}

func TestAuthorizer_FilterObjects(t *testing.T) {
	user := "user:123"
	relation := "member"
	objectType := "organization"
	requestedObjs := []string{"organization:1", "organization:2", "organization:3", "organization:4"}
	allowedObjs := []string{"organization:1", "organization:3", "organization:5"}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult []string
		expectedErr    bool
	}{
		{
			name: "success - filters correctly",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(allowedObjs, nil)
			},
			expectedResult: []string{"organization:1", "organization:3"},
			expectedErr:    false,
		},
		{
			name: "success - no overlap",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return([]string{"organization:9"}, nil)
			},
			expectedResult: nil,
			expectedErr:    false,
		},
		{
			name: "error - list objects error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().ListObjects(gomock.Any(), user, relation, objectType).Return(nil, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.FilterObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ListObjects").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.FilterObjects(context.Background(), user, relation, objectType, requestedObjs)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				if len(result) != len(tc.expectedResult) {
					t.Errorf("expected %d filtered objects, got %d", len(tc.expectedResult), len(result))
				}
			}
		})
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - models match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedErr: nil,
		},
		{
			name: "error - models do not match",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, errors.New("client error"))
			},
			expectedErr: errors.New("client error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.ValidateModel").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.ValidateModel(context.Background())

			if tc.expectedErr != nil {
				if err == nil {
					t.Errorf("expected error %v but got none", tc.expectedErr)
				} else if tc.expectedErr == ErrInvalidAuthModel && err != ErrInvalidAuthModel {
					t.Errorf("expected ErrInvalidAuthModel but got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizationModelProvider_GetModel(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema version 1.1, got %s", model.SchemaVersion)
	}

	types := make(map[string]bool)
	for _, td := range model.TypeDefinitions {
		types[td.Type] = true
	}
	for _, expected := range []string{"user", "privileged", "organization"} {
		if !types[expected] {
			t.Errorf("expected type %q in authorization model", expected)
		}
	}
}

func TestAuthorizer_AssignOrganizationOwner(t *testing.T) {
	orgID := "org-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), OWNER_RELATION, OrganizationTuple(orgID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - write tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), OWNER_RELATION, OrganizationTuple(orgID)).Return(errors.New("write error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignOrganizationOwner").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.AssignOrganizationOwner(context.Background(), orgID, userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_AssignPrivilegedAdmin(t *testing.T) {
	privilegedID := "privileged-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), ADMIN_RELATION, PrivilegedTuple(privilegedID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - write tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), ADMIN_RELATION, PrivilegedTuple(privilegedID)).Return(errors.New("write error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignPrivilegedAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.AssignPrivilegedAdmin(context.Background(), privilegedID, userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_LinkOrganizationToPrivileged(t *testing.T) {
	orgID := "org-123"
	privilegedID := "privileged-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), PrivilegedTuple(privilegedID), PRIVILEGED_RELATION, OrganizationTuple(orgID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - write tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), PrivilegedTuple(privilegedID), PRIVILEGED_RELATION, OrganizationTuple(orgID)).Return(errors.New("write error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.LinkOrganizationToPrivileged").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.LinkOrganizationToPrivileged(context.Background(), orgID, privilegedID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_AssignOrganizationMember(t *testing.T) {
	orgID := "org-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), MEMBER_RELATION, OrganizationTuple(orgID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - write tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), MEMBER_RELATION, OrganizationTuple(orgID)).Return(errors.New("write error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.AssignOrganizationMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.AssignOrganizationMember(context.Background(), orgID, userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_RemoveOrganizationOwner(t *testing.T) {
	orgID := "org-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuple(gomock.Any(), UserTuple(userID), OWNER_RELATION, OrganizationTuple(orgID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - delete tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuple(gomock.Any(), UserTuple(userID), OWNER_RELATION, OrganizationTuple(orgID)).Return(errors.New("delete error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.RemoveOrganizationOwner").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.RemoveOrganizationOwner(context.Background(), orgID, userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_RemoveOrganizationMember(t *testing.T) {
	orgID := "org-123"
	userID := "user-456"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuple(gomock.Any(), UserTuple(userID), MEMBER_RELATION, OrganizationTuple(orgID)).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "error - delete tuple error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuple(gomock.Any(), UserTuple(userID), MEMBER_RELATION, OrganizationTuple(orgID)).Return(errors.New("delete error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.RemoveOrganizationMember").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			err := a.RemoveOrganizationMember(context.Background(), orgID, userID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAuthorizer_CheckOrganizationAccess(t *testing.T) {
	orgID := "org-123"
	userID := "user-456"
	relation := "member"

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), relation, OrganizationTuple(orgID)).Return(true, nil)
			},
			expectedResult: true,
			expectedErr:    false,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), relation, OrganizationTuple(orgID)).Return(false, nil)
			},
			expectedResult: false,
			expectedErr:    false,
		},
		{
			name: "error - check error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), UserTuple(userID), relation, OrganizationTuple(orgID)).Return(false, errors.New("check error"))
			},
			expectedResult: false,
			expectedErr:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckOrganizationAccess").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.CheckOrganizationAccess(context.Background(), orgID, userID, relation)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_DeleteOrganization(t *testing.T) {
	orgID := "org-123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success - single batch",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				tuples := []fga.Tuple{
					{Key: fga.TupleKey{User: "user:1", Relation: "owner", Object: OrganizationTuple(orgID)}},
					{Key: fga.TupleKey{User: "user:2", Relation: "member", Object: OrganizationTuple(orgID)}},
				}
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "").Return(&client.ClientReadResponse{
					Tuples:            tuples,
					ContinuationToken: "",
				}, nil)
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedErr: false,
		},
		{
			name: "success - multiple batches",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				batch1 := []fga.Tuple{
					{Key: fga.TupleKey{User: "user:1", Relation: "owner", Object: OrganizationTuple(orgID)}},
				}
				batch2 := []fga.Tuple{
					{Key: fga.TupleKey{User: "user:2", Relation: "member", Object: OrganizationTuple(orgID)}},
				}
				gomock.InOrder(
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "").Return(&client.ClientReadResponse{
						Tuples:            batch1,
						ContinuationToken: "token1",
					}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
					mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "token1").Return(&client.ClientReadResponse{
						Tuples:            batch2,
						ContinuationToken: "",
					}, nil),
					mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
			expectedErr: false,
		},
		{
			name: "success - no tuples",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "").Return(&client.ClientReadResponse{
					Tuples:            []fga.Tuple{},
					ContinuationToken: "",
				}, nil)
			},
			expectedErr: false,
		},
		{
			name: "error - read tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "").Return(nil, errors.New("read error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "error - delete tuples error",
			setupMocks: func(mockClient *MockAuthzClientInterface, mockLogger *MockLoggerInterface) {
				tuples := []fga.Tuple{
					{Key: fga.TupleKey{User: "user:1", Relation: "owner", Object: OrganizationTuple(orgID)}},
				}
				mockClient.EXPECT().ReadTuples(gomock.Any(), "", "", OrganizationTuple(orgID), "").Return(&client.ClientReadResponse{
					Tuples:            tuples,
					ContinuationToken: "",
				}, nil)
				mockClient.EXPECT().DeleteTuples(gomock.Any(), gomock.Any()).Return(errors.New("delete error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.DeleteOrganization").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient, mockLogger)

			err := a.DeleteOrganization(context.Background(), orgID)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			} else if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
