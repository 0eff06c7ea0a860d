package laboratory

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"

	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entembryo "github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/enttest"
	entoocyte "github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	enttreatment "github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
)

// sqliteDriver adapts the pure-go sqlite driver to the "sqlite3" name
// ent expects, with foreign keys enabled on every connection.
type sqliteDriver struct {
	*sqlite.Driver
}

func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}

type labFixture struct {
	client    *repo.Client
	svc       Service
	operator  reqctx.Actor
	owner     reqctx.Actor
	intruder  reqctx.Actor
	treatment *repo.Treatment
	puncture  *repo.Puncture
}

func newLabFixture(t *testing.T) *labFixture {
	t.Helper()
	ctx := context.Background()

	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	t.Cleanup(func() { client.Close() })

	newUser := func(username string, role entuser.Role) *repo.User {
		u, err := client.User.Create().
			SetUsername(username).
			SetRole(role).
			Save(ctx)
		if err != nil {
			t.Fatalf("create user %s: %v", username, err)
		}
		return u
	}

	doctor := newUser("drhouse", entuser.RoleDOCTOR)
	labOp := newUser("labtech", entuser.RoleLAB_OPERATOR)
	ownerUser := newUser("ana", entuser.RolePATIENT)
	intruderUser := newUser("eva", entuser.RolePATIENT)

	pat, err := client.Patient.Create().SetUserID(ownerUser.ID).Save(ctx)
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if _, err := client.Patient.Create().SetUserID(intruderUser.ID).Save(ctx); err != nil {
		t.Fatalf("create second patient: %v", err)
	}

	tr, err := client.Treatment.Create().
		SetPatientID(pat.ID).
		SetDoctorID(doctor.ID).
		SetObjective(enttreatment.ObjectivePREGNANCY).
		Save(ctx)
	if err != nil {
		t.Fatalf("create treatment: %v", err)
	}

	svc := New(client)
	operator := reqctx.Actor{UserID: labOp.ID, Role: authorize.UserRoleLabOperator}

	punc, err := svc.RegisterPuncture(ctx, operator, tr.ID, RegisterPunctureRequest{
		Date:          time.Now(),
		OperatingRoom: "OR-1",
	})
	if err != nil {
		t.Fatalf("register puncture: %v", err)
	}

	return &labFixture{
		client:    client,
		svc:       svc,
		operator:  operator,
		owner:     reqctx.Actor{UserID: ownerUser.ID, Role: authorize.UserRolePatient},
		intruder:  reqctx.Actor{UserID: intruderUser.ID, Role: authorize.UserRolePatient},
		treatment: tr,
		puncture:  punc,
	}
}

func (f *labFixture) addOocyte(t *testing.T, code string, state OocyteState) *repo.Oocyte {
	t.Helper()
	oo, err := f.svc.AddOocyte(context.Background(), f.operator, f.puncture.ID, AddOocyteRequest{
		OocyteCode:   code,
		InitialState: state,
	})
	if err != nil {
		t.Fatalf("add oocyte %s: %v", code, err)
	}
	return oo
}

func (f *labFixture) createEmbryo(t *testing.T, oocyteID uuid.UUID, code string) *repo.Embryo {
	t.Helper()
	em, err := f.svc.CreateEmbryo(context.Background(), f.operator, oocyteID, CreateEmbryoRequest{
		EmbryoCode:             code,
		FertilizationTechnique: "ICSI",
		SpermSource:            "PARTNER",
		Quality:                4,
	})
	if err != nil {
		t.Fatalf("create embryo %s: %v", code, err)
	}
	return em
}

func TestCreateEmbryoRequiresMatureOocyte(t *testing.T) {
	f := newLabFixture(t)
	ctx := context.Background()

	oo := f.addOocyte(t, "OVO-001", OocyteImmature)

	_, err := f.svc.CreateEmbryo(ctx, f.operator, oo.ID, CreateEmbryoRequest{
		EmbryoCode:             "EMB-001",
		FertilizationTechnique: "ICSI",
		SpermSource:            "PARTNER",
		Quality:                3,
	})
	if !errors.Is(err, ErrOocyteNotMature) {
		t.Fatalf("CreateEmbryo on immature oocyte: got %v, want ErrOocyteNotMature", err)
	}

	// The rejection must leave no trace: no embryo row, no state flip,
	// no extra history entry.
	count, err := f.client.Embryo.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count embryos: %v", err)
	}
	if count != 0 {
		t.Errorf("embryo count = %d, want 0", count)
	}

	reloaded, err := f.client.Oocyte.Get(ctx, oo.ID)
	if err != nil {
		t.Fatalf("reload oocyte: %v", err)
	}
	if reloaded.CurrentState != entoocyte.CurrentStateIMMATURE {
		t.Errorf("oocyte state = %s, want IMMATURE", reloaded.CurrentState)
	}

	history, err := f.svc.ListOocyteHistory(ctx, f.operator, oo.ID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history rows = %d, want 1 (creation row only)", len(history))
	}
}

func TestCreateEmbryoFertilizesAtomically(t *testing.T) {
	f := newLabFixture(t)
	ctx := context.Background()

	oo := f.addOocyte(t, "OVO-001", OocyteMature)

	em, err := f.svc.CreateEmbryo(ctx, f.operator, oo.ID, CreateEmbryoRequest{
		EmbryoCode:             "EMB-001",
		FertilizationTechnique: "ICSI",
		SpermSource:            "PARTNER",
		Quality:                4,
	})
	if err != nil {
		t.Fatalf("create embryo: %v", err)
	}
	if em.CurrentState != entembryo.CurrentStateDEVELOPING {
		t.Errorf("embryo state = %s, want DEVELOPING", em.CurrentState)
	}

	reloaded, err := f.client.Oocyte.Get(ctx, oo.ID)
	if err != nil {
		t.Fatalf("reload oocyte: %v", err)
	}
	if reloaded.CurrentState != entoocyte.CurrentStateFERTILIZED {
		t.Errorf("oocyte state = %s, want FERTILIZED", reloaded.CurrentState)
	}

	history, err := f.svc.ListOocyteHistory(ctx, f.operator, oo.ID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history rows = %d, want 2", len(history))
	}
	latest := history[0]
	if latest.FromState != string(OocyteMature) || latest.ToState != string(OocyteFertilized) {
		t.Errorf("latest history = %s -> %s, want MATURE -> FERTILIZED", latest.FromState, latest.ToState)
	}

	// A fertilized oocyte cannot be fertilized again.
	_, err = f.svc.CreateEmbryo(ctx, f.operator, oo.ID, CreateEmbryoRequest{
		EmbryoCode:             "EMB-002",
		FertilizationTechnique: "IVF",
		SpermSource:            "DONOR",
		Quality:                2,
	})
	if !errors.Is(err, ErrEmbryoExists) {
		t.Errorf("second CreateEmbryo: got %v, want ErrEmbryoExists", err)
	}
}

func TestDirectFertilizationRejected(t *testing.T) {
	f := newLabFixture(t)

	oo := f.addOocyte(t, "OVO-001", OocyteMature)

	_, err := f.svc.UpdateOocyteState(context.Background(), f.operator, oo.ID, OocyteStateChangeRequest{
		Target: OocyteFertilized,
	})
	if !errors.Is(err, ErrFertilizeViaEmbryo) {
		t.Fatalf("UpdateOocyteState to FERTILIZED: got %v, want ErrFertilizeViaEmbryo", err)
	}
}

func TestRecordTransfer(t *testing.T) {
	t.Run("performed transfer flips embryo", func(t *testing.T) {
		f := newLabFixture(t)
		ctx := context.Background()

		oo := f.addOocyte(t, "OVO-001", OocyteMature)
		em := f.createEmbryo(t, oo.ID, "EMB-001")

		performed := time.Now()
		tr, err := f.svc.RecordTransfer(ctx, f.operator, em.ID, RecordTransferRequest{
			ScheduledDate: performed,
			PerformedDate: &performed,
		})
		if err != nil {
			t.Fatalf("record transfer: %v", err)
		}
		if tr.PerformedDate == nil {
			t.Error("performed date not persisted")
		}

		reloaded, err := f.client.Embryo.Get(ctx, em.ID)
		if err != nil {
			t.Fatalf("reload embryo: %v", err)
		}
		if reloaded.CurrentState != entembryo.CurrentStateTRANSFERRED {
			t.Errorf("embryo state = %s, want TRANSFERRED", reloaded.CurrentState)
		}
	})

	t.Run("scheduled transfer leaves embryo developing", func(t *testing.T) {
		f := newLabFixture(t)
		ctx := context.Background()

		oo := f.addOocyte(t, "OVO-001", OocyteMature)
		em := f.createEmbryo(t, oo.ID, "EMB-001")

		tr, err := f.svc.RecordTransfer(ctx, f.operator, em.ID, RecordTransferRequest{
			ScheduledDate: time.Now().AddDate(0, 0, 2),
		})
		if err != nil {
			t.Fatalf("record transfer: %v", err)
		}

		reloaded, err := f.client.Embryo.Get(ctx, em.ID)
		if err != nil {
			t.Fatalf("reload embryo: %v", err)
		}
		if reloaded.CurrentState != entembryo.CurrentStateDEVELOPING {
			t.Errorf("embryo state = %s, want DEVELOPING", reloaded.CurrentState)
		}

		// Marking the procedure performed later flips the embryo once.
		performed := time.Now()
		if _, err := f.svc.UpdateTransferOutcome(ctx, f.operator, tr.ID, TransferOutcomeRequest{
			PerformedDate: &performed,
		}); err != nil {
			t.Fatalf("update transfer outcome: %v", err)
		}

		reloaded, err = f.client.Embryo.Get(ctx, em.ID)
		if err != nil {
			t.Fatalf("reload embryo: %v", err)
		}
		if reloaded.CurrentState != entembryo.CurrentStateTRANSFERRED {
			t.Errorf("embryo state after outcome = %s, want TRANSFERRED", reloaded.CurrentState)
		}
	})
}

func TestPatientScopingHidesForeignMaterial(t *testing.T) {
	f := newLabFixture(t)
	ctx := context.Background()

	oo := f.addOocyte(t, "OVO-001", OocyteMature)
	em := f.createEmbryo(t, oo.ID, "EMB-001")

	if _, err := f.svc.GetOocyte(ctx, f.owner, oo.ID); err != nil {
		t.Fatalf("owner GetOocyte: %v", err)
	}
	if _, err := f.svc.GetEmbryo(ctx, f.owner, em.ID); err != nil {
		t.Fatalf("owner GetEmbryo: %v", err)
	}

	// Another patient gets not-found, never a permission hint that the
	// record exists.
	if _, err := f.svc.GetOocyte(ctx, f.intruder, oo.ID); !errors.Is(err, ErrOocyteNotFound) {
		t.Errorf("intruder GetOocyte: got %v, want ErrOocyteNotFound", err)
	}
	if _, err := f.svc.GetEmbryo(ctx, f.intruder, em.ID); !errors.Is(err, ErrEmbryoNotFound) {
		t.Errorf("intruder GetEmbryo: got %v, want ErrEmbryoNotFound", err)
	}
	if _, err := f.svc.ListOocyteHistory(ctx, f.intruder, oo.ID); !errors.Is(err, ErrOocyteNotFound) {
		t.Errorf("intruder ListOocyteHistory: got %v, want ErrOocyteNotFound", err)
	}
}

func TestOocyteHistoryNewestFirst(t *testing.T) {
	f := newLabFixture(t)
	ctx := context.Background()

	oo := f.addOocyte(t, "OVO-001", OocyteImmature)

	// Append rows with explicit timestamps so the expected order is
	// unambiguous regardless of clock resolution.
	base := time.Now()
	for i, to := range []OocyteState{OocyteMature, OocyteCryopreserved} {
		if _, err := f.client.OocyteStateHistory.Create().
			SetOocyteID(oo.ID).
			SetFromState(string(OocyteImmature)).
			SetToState(string(to)).
			SetCreatedAt(base.Add(time.Duration(i+1) * time.Hour)).
			Save(ctx); err != nil {
			t.Fatalf("append history row: %v", err)
		}
	}

	history, err := f.svc.ListOocyteHistory(ctx, f.operator, oo.ID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history rows = %d, want 3", len(history))
	}

	want := []string{string(OocyteCryopreserved), string(OocyteMature), string(OocyteImmature)}
	for i, row := range history {
		if row.ToState != want[i] {
			t.Errorf("history[%d].ToState = %s, want %s", i, row.ToState, want[i])
		}
	}
	for i := 1; i < len(history); i++ {
		if history[i].CreatedAt.After(history[i-1].CreatedAt) {
			t.Errorf("history[%d] is newer than history[%d]", i, i-1)
		}
	}
}
