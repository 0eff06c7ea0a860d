package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/fertitrack/fertitrack_backend/config"
	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entembryo "github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	entoocyte "github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	entpatient "github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	enttreatment "github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/database"
	"github.com/fertitrack/fertitrack_backend/pkg/util/password"
)

type seedUser struct {
	Username  string
	Email     string
	Password  string
	Role      entuser.Role
	FirstName string
	LastName  string
	DNI       string
}

// Demo cast for local development and manual testing. Idempotent:
// existing usernames are skipped.
var seedUsers = []seedUser{
	{"admin", "admin@fertitrack.local", "admin123", entuser.RoleADMIN, "System", "Admin", "10000001"},
	{"director", "director@fertitrack.local", "director123", entuser.RoleMEDICAL_DIRECTOR, "María", "González", "10000002"},
	{"drlopez", "drlopez@fertitrack.local", "doctor123", entuser.RoleDOCTOR, "Carlos", "López", "10000003"},
	{"dramartin", "dramartin@fertitrack.local", "doctor123", entuser.RoleDOCTOR, "Ana", "Martín", "10000004"},
	{"labop1", "labop1@fertitrack.local", "labop123", entuser.RoleLAB_OPERATOR, "Laura", "Fernández", "10000005"},
	{"labop2", "labop2@fertitrack.local", "labop123", entuser.RoleLAB_OPERATOR, "Diego", "Suárez", "10000006"},
	{"paciente1", "paciente1@fertitrack.local", "paciente123", entuser.RolePATIENT, "Sofía", "Ramírez", "10000007"},
	{"paciente2", "paciente2@fertitrack.local", "paciente123", entuser.RolePATIENT, "Lucía", "Torres", "10000008"},
	{"paciente3", "paciente3@fertitrack.local", "paciente123", entuser.RolePATIENT, "Valentina", "Morales", "10000009"},
}

func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed demo users and default authorization policies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			if timeout <= 0 {
				timeout = 60 * time.Second
			}
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			if err := authorize.SeedDefaultPolicies(ctx, auth); err != nil {
				return fmt.Errorf("failed to seed policies: %w", err)
			}

			for _, su := range seedUsers {
				if err := seedOne(ctx, client, auth, su); err != nil {
					return fmt.Errorf("seed user %s: %w", su.Username, err)
				}
			}

			if err := seedDemoGraph(ctx, client); err != nil {
				return fmt.Errorf("seed demo graph: %w", err)
			}

			fmt.Println("Seed data applied successfully.")
			return nil
		},
	}

	return cmd
}

func seedOne(ctx context.Context, client *repo.Client, auth authorize.IAuthorization, su seedUser) error {
	exists, err := client.User.Query().
		Where(entuser.Username(su.Username)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if exists {
		fmt.Printf("user %s already exists, skipping\n", su.Username)
		return nil
	}

	hash, err := password.Hash(su.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u, err := client.User.Create().
		SetUsername(su.Username).
		SetEmail(su.Email).
		SetPasswordHash(hash).
		SetRole(su.Role).
		SetFirstName(su.FirstName).
		SetLastName(su.LastName).
		SetDni(su.DNI).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if su.Role == entuser.RolePATIENT {
		if _, err := client.Patient.Create().SetUserID(u.ID).Save(ctx); err != nil {
			return fmt.Errorf("create patient profile: %w", err)
		}
	}

	if err := authorize.AssignRolesForUser(ctx, auth, u.ID.String(), string(su.Role)); err != nil {
		return fmt.Errorf("assign roles: %w", err)
	}

	fmt.Printf("created %s (%s)\n", su.Username, su.Role)
	return nil
}

// seedDemoGraph gives paciente1 a full clinical record: an active
// treatment with monitoring days, a puncture, oocytes with their history
// trail, one fertilized embryo and a scheduled transfer. Skipped when
// the patient already has a treatment.
func seedDemoGraph(ctx context.Context, client *repo.Client) error {
	pat, err := client.Patient.Query().
		Where(entpatient.HasUserWith(entuser.Username("paciente1"))).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get demo patient: %w", err)
	}

	exists, err := client.Treatment.Query().
		Where(enttreatment.PatientID(pat.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check demo treatment: %w", err)
	}
	if exists {
		fmt.Println("demo clinical graph already exists, skipping")
		return nil
	}

	doctor, err := client.User.Query().
		Where(entuser.Username("drlopez")).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get demo doctor: %w", err)
	}
	labOp, err := client.User.Query().
		Where(entuser.Username("labop1")).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("get demo lab operator: %w", err)
	}

	t, err := client.Treatment.Create().
		SetPatientID(pat.ID).
		SetDoctorID(doctor.ID).
		SetObjective(enttreatment.Objective("PREGNANCY")).
		SetStimulationProtocol("GnRH antagonist").
		SetMedicationType("Gonal-F").
		SetMedicationDose("225 IU").
		SetMedicationDuration("10 days").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create demo treatment: %w", err)
	}

	now := time.Now()
	for i, notes := range []string{"Baseline scan, 8 follicles", "Lead follicle 18mm, trigger tonight"} {
		if _, err := client.MonitoringDay.Create().
			SetTreatmentID(t.ID).
			SetDate(now.AddDate(0, 0, -10+i*5)).
			SetNotes(notes).
			SetCompleted(true).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo monitoring day: %w", err)
		}
	}

	punc, err := client.Puncture.Create().
		SetTreatmentID(t.ID).
		SetOperatorID(labOp.ID).
		SetDate(now.AddDate(0, 0, -3)).
		SetOperatingRoom("OR-1").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create demo puncture: %w", err)
	}

	type demoOocyte struct {
		code  string
		state string
	}
	oocytes := []demoOocyte{
		{"OVO-2026-0001", "MATURE"},
		{"OVO-2026-0002", "MATURE"},
		{"OVO-2026-0003", "IMMATURE"},
	}

	var first *repo.Oocyte
	for _, o := range oocytes {
		created, err := client.Oocyte.Create().
			SetPunctureID(punc.ID).
			SetOocyteCode(o.code).
			SetInitialState(entoocyte.InitialState(o.state)).
			SetCurrentState(entoocyte.CurrentState(o.state)).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create demo oocyte %s: %w", o.code, err)
		}
		if _, err := client.OocyteStateHistory.Create().
			SetOocyteID(created.ID).
			SetToState(o.state).
			SetNotes("initial state").
			SetChangedByID(labOp.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("create demo oocyte history: %w", err)
		}
		if first == nil {
			first = created
		}
	}

	embryo, err := client.Embryo.Create().
		SetOocyteID(first.ID).
		SetEmbryoCode("EMB-2026-0001").
		SetFertilizationTechnique(entembryo.FertilizationTechnique("ICSI")).
		SetSpermSource(entembryo.SpermSource("PARTNER")).
		SetQuality(4).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create demo embryo: %w", err)
	}
	if _, err := client.Oocyte.UpdateOneID(first.ID).
		SetCurrentState(entoocyte.CurrentState("FERTILIZED")).
		Save(ctx); err != nil {
		return fmt.Errorf("fertilize demo oocyte: %w", err)
	}
	if _, err := client.OocyteStateHistory.Create().
		SetOocyteID(first.ID).
		SetFromState("MATURE").
		SetToState("FERTILIZED").
		SetNotes("fertilized via ICSI").
		SetChangedByID(labOp.ID).
		Save(ctx); err != nil {
		return fmt.Errorf("create demo fertilization history: %w", err)
	}

	if _, err := client.EmbryoTransfer.Create().
		SetEmbryoID(embryo.ID).
		SetScheduledDate(now.AddDate(0, 0, 2)).
		SetNotes("Day-5 blastocyst transfer").
		Save(ctx); err != nil {
		return fmt.Errorf("create demo transfer: %w", err)
	}

	fmt.Println("created demo clinical graph for paciente1")
	return nil
}
