package usecase

import (
	"context"
	"errors"
	"testing"

	"printshop/internal/domain/entities"
	mock_interfaces "printshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceStatusUseCase_Set(t *testing.T) {
	t.Run("invalid service name", func(t *testing.T) {
		uc := NewServiceStatusUseCase(nil)
		for _, name := range []string{"", " ", "-printing", "print shop", "p$"} {
			if _, err := uc.Set(context.Background(), "a1", name, true, ""); !errors.Is(err, ErrInvalidService) {
				t.Fatalf("expected ErrInvalidService for %q, got %v", name, err)
			}
		}
	})

	t.Run("missing admin", func(t *testing.T) {
		uc := NewServiceStatusUseCase(nil)
		_, err := uc.Set(context.Background(), "", "printing", true, "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("stores normalized record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceStatusRepository(ctrl)
		uc := NewServiceStatusUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s entities.ServiceStatus) (entities.ServiceStatus, error) {
			if s.Service != "printing" || s.Available || s.Message != "toner" || s.UpdatedBy != "a1" || s.UpdatedAt.IsZero() {
				t.Fatalf("unexpected record: %+v", s)
			}
			return s, nil
		})

		if _, err := uc.Set(context.Background(), "a1", " Printing ", false, " toner "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceStatusRepository(ctrl)
		uc := NewServiceStatusUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(entities.ServiceStatus{}, errors.New("db"))

		_, err := uc.Set(context.Background(), "a1", "printing", true, "")
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})
}

func TestServiceStatusUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceStatusRepository(ctrl)
	uc := NewServiceStatusUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceStatus{{Service: "printing", Available: true}}, nil)

	got, err := uc.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
}

func TestServiceStatusUseCase_Get(t *testing.T) {
	t.Run("missing record is available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceStatusRepository(ctrl)
		uc := NewServiceStatusUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "printing").Return(entities.ServiceStatus{}, nil)

		ok, err := uc.IsAvailable(context.Background(), "Printing")
		if err != nil || !ok {
			t.Fatalf("expected available, got %v %v", ok, err)
		}
	})

	t.Run("stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceStatusRepository(ctrl)
		uc := NewServiceStatusUseCase(repo)

		repo.EXPECT().Get(gomock.Any(), "printing").Return(entities.ServiceStatus{Service: "printing", Available: false, Message: "closed"}, nil)

		st, err := uc.Get(context.Background(), "printing")
		if err != nil || st.Available || st.Message != "closed" {
			t.Fatalf("unexpected status: %+v %v", st, err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		uc := NewServiceStatusUseCase(nil)
		if _, err := uc.Get(context.Background(), "no spaces"); !errors.Is(err, ErrInvalidService) {
			t.Fatalf("expected ErrInvalidService, got %v", err)
		}
	})
}
