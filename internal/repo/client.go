// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fertitrack/fertitrack_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Embryo is the client for interacting with the Embryo builders.
	Embryo *EmbryoClient
	// EmbryoTransfer is the client for interacting with the EmbryoTransfer builders.
	EmbryoTransfer *EmbryoTransferClient
	// MedicalHistory is the client for interacting with the MedicalHistory builders.
	MedicalHistory *MedicalHistoryClient
	// MedicalOrder is the client for interacting with the MedicalOrder builders.
	MedicalOrder *MedicalOrderClient
	// MonitoringDay is the client for interacting with the MonitoringDay builders.
	MonitoringDay *MonitoringDayClient
	// Oocyte is the client for interacting with the Oocyte builders.
	Oocyte *OocyteClient
	// OocyteStateHistory is the client for interacting with the OocyteStateHistory builders.
	OocyteStateHistory *OocyteStateHistoryClient
	// Partner is the client for interacting with the Partner builders.
	Partner *PartnerClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// Puncture is the client for interacting with the Puncture builders.
	Puncture *PunctureClient
	// StudyResult is the client for interacting with the StudyResult builders.
	StudyResult *StudyResultClient
	// Treatment is the client for interacting with the Treatment builders.
	Treatment *TreatmentClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Embryo = NewEmbryoClient(c.config)
	c.EmbryoTransfer = NewEmbryoTransferClient(c.config)
	c.MedicalHistory = NewMedicalHistoryClient(c.config)
	c.MedicalOrder = NewMedicalOrderClient(c.config)
	c.MonitoringDay = NewMonitoringDayClient(c.config)
	c.Oocyte = NewOocyteClient(c.config)
	c.OocyteStateHistory = NewOocyteStateHistoryClient(c.config)
	c.Partner = NewPartnerClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.Puncture = NewPunctureClient(c.config)
	c.StudyResult = NewStudyResultClient(c.config)
	c.Treatment = NewTreatmentClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Embryo:             NewEmbryoClient(cfg),
		EmbryoTransfer:     NewEmbryoTransferClient(cfg),
		MedicalHistory:     NewMedicalHistoryClient(cfg),
		MedicalOrder:       NewMedicalOrderClient(cfg),
		MonitoringDay:      NewMonitoringDayClient(cfg),
		Oocyte:             NewOocyteClient(cfg),
		OocyteStateHistory: NewOocyteStateHistoryClient(cfg),
		Partner:            NewPartnerClient(cfg),
		Patient:            NewPatientClient(cfg),
		Puncture:           NewPunctureClient(cfg),
		StudyResult:        NewStudyResultClient(cfg),
		Treatment:          NewTreatmentClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                ctx,
		config:             cfg,
		Embryo:             NewEmbryoClient(cfg),
		EmbryoTransfer:     NewEmbryoTransferClient(cfg),
		MedicalHistory:     NewMedicalHistoryClient(cfg),
		MedicalOrder:       NewMedicalOrderClient(cfg),
		MonitoringDay:      NewMonitoringDayClient(cfg),
		Oocyte:             NewOocyteClient(cfg),
		OocyteStateHistory: NewOocyteStateHistoryClient(cfg),
		Partner:            NewPartnerClient(cfg),
		Patient:            NewPatientClient(cfg),
		Puncture:           NewPunctureClient(cfg),
		StudyResult:        NewStudyResultClient(cfg),
		Treatment:          NewTreatmentClient(cfg),
		User:               NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Embryo.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Embryo, c.EmbryoTransfer, c.MedicalHistory, c.MedicalOrder, c.MonitoringDay,
		c.Oocyte, c.OocyteStateHistory, c.Partner, c.Patient, c.Puncture,
		c.StudyResult, c.Treatment, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Embryo, c.EmbryoTransfer, c.MedicalHistory, c.MedicalOrder, c.MonitoringDay,
		c.Oocyte, c.OocyteStateHistory, c.Partner, c.Patient, c.Puncture,
		c.StudyResult, c.Treatment, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EmbryoMutation:
		return c.Embryo.mutate(ctx, m)
	case *EmbryoTransferMutation:
		return c.EmbryoTransfer.mutate(ctx, m)
	case *MedicalHistoryMutation:
		return c.MedicalHistory.mutate(ctx, m)
	case *MedicalOrderMutation:
		return c.MedicalOrder.mutate(ctx, m)
	case *MonitoringDayMutation:
		return c.MonitoringDay.mutate(ctx, m)
	case *OocyteMutation:
		return c.Oocyte.mutate(ctx, m)
	case *OocyteStateHistoryMutation:
		return c.OocyteStateHistory.mutate(ctx, m)
	case *PartnerMutation:
		return c.Partner.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *PunctureMutation:
		return c.Puncture.mutate(ctx, m)
	case *StudyResultMutation:
		return c.StudyResult.mutate(ctx, m)
	case *TreatmentMutation:
		return c.Treatment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// EmbryoClient is a client for the Embryo schema.
type EmbryoClient struct {
	config
}

// NewEmbryoClient returns a client for the Embryo from the given config.
func NewEmbryoClient(c config) *EmbryoClient {
	return &EmbryoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `embryo.Hooks(f(g(h())))`.
func (c *EmbryoClient) Use(hooks ...Hook) {
	c.hooks.Embryo = append(c.hooks.Embryo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `embryo.Intercept(f(g(h())))`.
func (c *EmbryoClient) Intercept(interceptors ...Interceptor) {
	c.inters.Embryo = append(c.inters.Embryo, interceptors...)
}

// Create returns a builder for creating a Embryo entity.
func (c *EmbryoClient) Create() *EmbryoCreate {
	mutation := newEmbryoMutation(c.config, OpCreate)
	return &EmbryoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Embryo entities.
func (c *EmbryoClient) CreateBulk(builders ...*EmbryoCreate) *EmbryoCreateBulk {
	return &EmbryoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmbryoClient) MapCreateBulk(slice any, setFunc func(*EmbryoCreate, int)) *EmbryoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmbryoCreateBulk{err: fmt.Errorf("calling to EmbryoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmbryoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmbryoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Embryo.
func (c *EmbryoClient) Update() *EmbryoUpdate {
	mutation := newEmbryoMutation(c.config, OpUpdate)
	return &EmbryoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmbryoClient) UpdateOne(_m *Embryo) *EmbryoUpdateOne {
	mutation := newEmbryoMutation(c.config, OpUpdateOne, withEmbryo(_m))
	return &EmbryoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmbryoClient) UpdateOneID(id uuid.UUID) *EmbryoUpdateOne {
	mutation := newEmbryoMutation(c.config, OpUpdateOne, withEmbryoID(id))
	return &EmbryoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Embryo.
func (c *EmbryoClient) Delete() *EmbryoDelete {
	mutation := newEmbryoMutation(c.config, OpDelete)
	return &EmbryoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmbryoClient) DeleteOne(_m *Embryo) *EmbryoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmbryoClient) DeleteOneID(id uuid.UUID) *EmbryoDeleteOne {
	builder := c.Delete().Where(embryo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmbryoDeleteOne{builder}
}

// Query returns a query builder for Embryo.
func (c *EmbryoClient) Query() *EmbryoQuery {
	return &EmbryoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmbryo},
		inters: c.Interceptors(),
	}
}

// Get returns a Embryo entity by its id.
func (c *EmbryoClient) Get(ctx context.Context, id uuid.UUID) (*Embryo, error) {
	return c.Query().Where(embryo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmbryoClient) GetX(ctx context.Context, id uuid.UUID) *Embryo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOocyte queries the oocyte edge of a Embryo.
func (c *EmbryoClient) QueryOocyte(_m *Embryo) *OocyteQuery {
	query := (&OocyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(embryo.Table, embryo.FieldID, id),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, embryo.OocyteTable, embryo.OocyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransfer queries the transfer edge of a Embryo.
func (c *EmbryoClient) QueryTransfer(_m *Embryo) *EmbryoTransferQuery {
	query := (&EmbryoTransferClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(embryo.Table, embryo.FieldID, id),
			sqlgraph.To(embryotransfer.Table, embryotransfer.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, embryo.TransferTable, embryo.TransferColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmbryoClient) Hooks() []Hook {
	return c.hooks.Embryo
}

// Interceptors returns the client interceptors.
func (c *EmbryoClient) Interceptors() []Interceptor {
	return c.inters.Embryo
}

func (c *EmbryoClient) mutate(ctx context.Context, m *EmbryoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmbryoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmbryoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmbryoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmbryoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Embryo mutation op: %q", m.Op())
	}
}

// EmbryoTransferClient is a client for the EmbryoTransfer schema.
type EmbryoTransferClient struct {
	config
}

// NewEmbryoTransferClient returns a client for the EmbryoTransfer from the given config.
func NewEmbryoTransferClient(c config) *EmbryoTransferClient {
	return &EmbryoTransferClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `embryotransfer.Hooks(f(g(h())))`.
func (c *EmbryoTransferClient) Use(hooks ...Hook) {
	c.hooks.EmbryoTransfer = append(c.hooks.EmbryoTransfer, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `embryotransfer.Intercept(f(g(h())))`.
func (c *EmbryoTransferClient) Intercept(interceptors ...Interceptor) {
	c.inters.EmbryoTransfer = append(c.inters.EmbryoTransfer, interceptors...)
}

// Create returns a builder for creating a EmbryoTransfer entity.
func (c *EmbryoTransferClient) Create() *EmbryoTransferCreate {
	mutation := newEmbryoTransferMutation(c.config, OpCreate)
	return &EmbryoTransferCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EmbryoTransfer entities.
func (c *EmbryoTransferClient) CreateBulk(builders ...*EmbryoTransferCreate) *EmbryoTransferCreateBulk {
	return &EmbryoTransferCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EmbryoTransferClient) MapCreateBulk(slice any, setFunc func(*EmbryoTransferCreate, int)) *EmbryoTransferCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EmbryoTransferCreateBulk{err: fmt.Errorf("calling to EmbryoTransferClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EmbryoTransferCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EmbryoTransferCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EmbryoTransfer.
func (c *EmbryoTransferClient) Update() *EmbryoTransferUpdate {
	mutation := newEmbryoTransferMutation(c.config, OpUpdate)
	return &EmbryoTransferUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EmbryoTransferClient) UpdateOne(_m *EmbryoTransfer) *EmbryoTransferUpdateOne {
	mutation := newEmbryoTransferMutation(c.config, OpUpdateOne, withEmbryoTransfer(_m))
	return &EmbryoTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EmbryoTransferClient) UpdateOneID(id uuid.UUID) *EmbryoTransferUpdateOne {
	mutation := newEmbryoTransferMutation(c.config, OpUpdateOne, withEmbryoTransferID(id))
	return &EmbryoTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EmbryoTransfer.
func (c *EmbryoTransferClient) Delete() *EmbryoTransferDelete {
	mutation := newEmbryoTransferMutation(c.config, OpDelete)
	return &EmbryoTransferDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EmbryoTransferClient) DeleteOne(_m *EmbryoTransfer) *EmbryoTransferDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EmbryoTransferClient) DeleteOneID(id uuid.UUID) *EmbryoTransferDeleteOne {
	builder := c.Delete().Where(embryotransfer.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EmbryoTransferDeleteOne{builder}
}

// Query returns a query builder for EmbryoTransfer.
func (c *EmbryoTransferClient) Query() *EmbryoTransferQuery {
	return &EmbryoTransferQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEmbryoTransfer},
		inters: c.Interceptors(),
	}
}

// Get returns a EmbryoTransfer entity by its id.
func (c *EmbryoTransferClient) Get(ctx context.Context, id uuid.UUID) (*EmbryoTransfer, error) {
	return c.Query().Where(embryotransfer.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EmbryoTransferClient) GetX(ctx context.Context, id uuid.UUID) *EmbryoTransfer {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmbryo queries the embryo edge of a EmbryoTransfer.
func (c *EmbryoTransferClient) QueryEmbryo(_m *EmbryoTransfer) *EmbryoQuery {
	query := (&EmbryoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(embryotransfer.Table, embryotransfer.FieldID, id),
			sqlgraph.To(embryo.Table, embryo.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, embryotransfer.EmbryoTable, embryotransfer.EmbryoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EmbryoTransferClient) Hooks() []Hook {
	return c.hooks.EmbryoTransfer
}

// Interceptors returns the client interceptors.
func (c *EmbryoTransferClient) Interceptors() []Interceptor {
	return c.inters.EmbryoTransfer
}

func (c *EmbryoTransferClient) mutate(ctx context.Context, m *EmbryoTransferMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EmbryoTransferCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EmbryoTransferUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EmbryoTransferUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EmbryoTransferDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown EmbryoTransfer mutation op: %q", m.Op())
	}
}

// MedicalHistoryClient is a client for the MedicalHistory schema.
type MedicalHistoryClient struct {
	config
}

// NewMedicalHistoryClient returns a client for the MedicalHistory from the given config.
func NewMedicalHistoryClient(c config) *MedicalHistoryClient {
	return &MedicalHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalhistory.Hooks(f(g(h())))`.
func (c *MedicalHistoryClient) Use(hooks ...Hook) {
	c.hooks.MedicalHistory = append(c.hooks.MedicalHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalhistory.Intercept(f(g(h())))`.
func (c *MedicalHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalHistory = append(c.inters.MedicalHistory, interceptors...)
}

// Create returns a builder for creating a MedicalHistory entity.
func (c *MedicalHistoryClient) Create() *MedicalHistoryCreate {
	mutation := newMedicalHistoryMutation(c.config, OpCreate)
	return &MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalHistory entities.
func (c *MedicalHistoryClient) CreateBulk(builders ...*MedicalHistoryCreate) *MedicalHistoryCreateBulk {
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalHistoryClient) MapCreateBulk(slice any, setFunc func(*MedicalHistoryCreate, int)) *MedicalHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalHistoryCreateBulk{err: fmt.Errorf("calling to MedicalHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalHistory.
func (c *MedicalHistoryClient) Update() *MedicalHistoryUpdate {
	mutation := newMedicalHistoryMutation(c.config, OpUpdate)
	return &MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalHistoryClient) UpdateOne(_m *MedicalHistory) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistory(_m))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalHistoryClient) UpdateOneID(id uuid.UUID) *MedicalHistoryUpdateOne {
	mutation := newMedicalHistoryMutation(c.config, OpUpdateOne, withMedicalHistoryID(id))
	return &MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalHistory.
func (c *MedicalHistoryClient) Delete() *MedicalHistoryDelete {
	mutation := newMedicalHistoryMutation(c.config, OpDelete)
	return &MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalHistoryClient) DeleteOne(_m *MedicalHistory) *MedicalHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalHistoryClient) DeleteOneID(id uuid.UUID) *MedicalHistoryDeleteOne {
	builder := c.Delete().Where(medicalhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalHistoryDeleteOne{builder}
}

// Query returns a query builder for MedicalHistory.
func (c *MedicalHistoryClient) Query() *MedicalHistoryQuery {
	return &MedicalHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalHistory entity by its id.
func (c *MedicalHistoryClient) Get(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return c.Query().Where(medicalhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalHistoryClient) GetX(ctx context.Context, id uuid.UUID) *MedicalHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a MedicalHistory.
func (c *MedicalHistoryClient) QueryPatient(_m *MedicalHistory) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalhistory.Table, medicalhistory.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, medicalhistory.PatientTable, medicalhistory.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MedicalHistoryClient) Hooks() []Hook {
	return c.hooks.MedicalHistory
}

// Interceptors returns the client interceptors.
func (c *MedicalHistoryClient) Interceptors() []Interceptor {
	return c.inters.MedicalHistory
}

func (c *MedicalHistoryClient) mutate(ctx context.Context, m *MedicalHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalHistory mutation op: %q", m.Op())
	}
}

// MedicalOrderClient is a client for the MedicalOrder schema.
type MedicalOrderClient struct {
	config
}

// NewMedicalOrderClient returns a client for the MedicalOrder from the given config.
func NewMedicalOrderClient(c config) *MedicalOrderClient {
	return &MedicalOrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalorder.Hooks(f(g(h())))`.
func (c *MedicalOrderClient) Use(hooks ...Hook) {
	c.hooks.MedicalOrder = append(c.hooks.MedicalOrder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalorder.Intercept(f(g(h())))`.
func (c *MedicalOrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalOrder = append(c.inters.MedicalOrder, interceptors...)
}

// Create returns a builder for creating a MedicalOrder entity.
func (c *MedicalOrderClient) Create() *MedicalOrderCreate {
	mutation := newMedicalOrderMutation(c.config, OpCreate)
	return &MedicalOrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalOrder entities.
func (c *MedicalOrderClient) CreateBulk(builders ...*MedicalOrderCreate) *MedicalOrderCreateBulk {
	return &MedicalOrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalOrderClient) MapCreateBulk(slice any, setFunc func(*MedicalOrderCreate, int)) *MedicalOrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalOrderCreateBulk{err: fmt.Errorf("calling to MedicalOrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalOrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalOrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalOrder.
func (c *MedicalOrderClient) Update() *MedicalOrderUpdate {
	mutation := newMedicalOrderMutation(c.config, OpUpdate)
	return &MedicalOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalOrderClient) UpdateOne(_m *MedicalOrder) *MedicalOrderUpdateOne {
	mutation := newMedicalOrderMutation(c.config, OpUpdateOne, withMedicalOrder(_m))
	return &MedicalOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalOrderClient) UpdateOneID(id uuid.UUID) *MedicalOrderUpdateOne {
	mutation := newMedicalOrderMutation(c.config, OpUpdateOne, withMedicalOrderID(id))
	return &MedicalOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalOrder.
func (c *MedicalOrderClient) Delete() *MedicalOrderDelete {
	mutation := newMedicalOrderMutation(c.config, OpDelete)
	return &MedicalOrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalOrderClient) DeleteOne(_m *MedicalOrder) *MedicalOrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalOrderClient) DeleteOneID(id uuid.UUID) *MedicalOrderDeleteOne {
	builder := c.Delete().Where(medicalorder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalOrderDeleteOne{builder}
}

// Query returns a query builder for MedicalOrder.
func (c *MedicalOrderClient) Query() *MedicalOrderQuery {
	return &MedicalOrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalOrder entity by its id.
func (c *MedicalOrderClient) Get(ctx context.Context, id uuid.UUID) (*MedicalOrder, error) {
	return c.Query().Where(medicalorder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalOrderClient) GetX(ctx context.Context, id uuid.UUID) *MedicalOrder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a MedicalOrder.
func (c *MedicalOrderClient) QueryTreatment(_m *MedicalOrder) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalorder.Table, medicalorder.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, medicalorder.TreatmentTable, medicalorder.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MedicalOrderClient) Hooks() []Hook {
	return c.hooks.MedicalOrder
}

// Interceptors returns the client interceptors.
func (c *MedicalOrderClient) Interceptors() []Interceptor {
	return c.inters.MedicalOrder
}

func (c *MedicalOrderClient) mutate(ctx context.Context, m *MedicalOrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalOrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalOrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalOrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalOrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalOrder mutation op: %q", m.Op())
	}
}

// MonitoringDayClient is a client for the MonitoringDay schema.
type MonitoringDayClient struct {
	config
}

// NewMonitoringDayClient returns a client for the MonitoringDay from the given config.
func NewMonitoringDayClient(c config) *MonitoringDayClient {
	return &MonitoringDayClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monitoringday.Hooks(f(g(h())))`.
func (c *MonitoringDayClient) Use(hooks ...Hook) {
	c.hooks.MonitoringDay = append(c.hooks.MonitoringDay, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monitoringday.Intercept(f(g(h())))`.
func (c *MonitoringDayClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonitoringDay = append(c.inters.MonitoringDay, interceptors...)
}

// Create returns a builder for creating a MonitoringDay entity.
func (c *MonitoringDayClient) Create() *MonitoringDayCreate {
	mutation := newMonitoringDayMutation(c.config, OpCreate)
	return &MonitoringDayCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonitoringDay entities.
func (c *MonitoringDayClient) CreateBulk(builders ...*MonitoringDayCreate) *MonitoringDayCreateBulk {
	return &MonitoringDayCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonitoringDayClient) MapCreateBulk(slice any, setFunc func(*MonitoringDayCreate, int)) *MonitoringDayCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonitoringDayCreateBulk{err: fmt.Errorf("calling to MonitoringDayClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonitoringDayCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonitoringDayCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonitoringDay.
func (c *MonitoringDayClient) Update() *MonitoringDayUpdate {
	mutation := newMonitoringDayMutation(c.config, OpUpdate)
	return &MonitoringDayUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonitoringDayClient) UpdateOne(_m *MonitoringDay) *MonitoringDayUpdateOne {
	mutation := newMonitoringDayMutation(c.config, OpUpdateOne, withMonitoringDay(_m))
	return &MonitoringDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonitoringDayClient) UpdateOneID(id uuid.UUID) *MonitoringDayUpdateOne {
	mutation := newMonitoringDayMutation(c.config, OpUpdateOne, withMonitoringDayID(id))
	return &MonitoringDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonitoringDay.
func (c *MonitoringDayClient) Delete() *MonitoringDayDelete {
	mutation := newMonitoringDayMutation(c.config, OpDelete)
	return &MonitoringDayDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonitoringDayClient) DeleteOne(_m *MonitoringDay) *MonitoringDayDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonitoringDayClient) DeleteOneID(id uuid.UUID) *MonitoringDayDeleteOne {
	builder := c.Delete().Where(monitoringday.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonitoringDayDeleteOne{builder}
}

// Query returns a query builder for MonitoringDay.
func (c *MonitoringDayClient) Query() *MonitoringDayQuery {
	return &MonitoringDayQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonitoringDay},
		inters: c.Interceptors(),
	}
}

// Get returns a MonitoringDay entity by its id.
func (c *MonitoringDayClient) Get(ctx context.Context, id uuid.UUID) (*MonitoringDay, error) {
	return c.Query().Where(monitoringday.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonitoringDayClient) GetX(ctx context.Context, id uuid.UUID) *MonitoringDay {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a MonitoringDay.
func (c *MonitoringDayClient) QueryTreatment(_m *MonitoringDay) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoringday.Table, monitoringday.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoringday.TreatmentTable, monitoringday.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MonitoringDayClient) Hooks() []Hook {
	return c.hooks.MonitoringDay
}

// Interceptors returns the client interceptors.
func (c *MonitoringDayClient) Interceptors() []Interceptor {
	return c.inters.MonitoringDay
}

func (c *MonitoringDayClient) mutate(ctx context.Context, m *MonitoringDayMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonitoringDayCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonitoringDayUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonitoringDayUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonitoringDayDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MonitoringDay mutation op: %q", m.Op())
	}
}

// OocyteClient is a client for the Oocyte schema.
type OocyteClient struct {
	config
}

// NewOocyteClient returns a client for the Oocyte from the given config.
func NewOocyteClient(c config) *OocyteClient {
	return &OocyteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oocyte.Hooks(f(g(h())))`.
func (c *OocyteClient) Use(hooks ...Hook) {
	c.hooks.Oocyte = append(c.hooks.Oocyte, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oocyte.Intercept(f(g(h())))`.
func (c *OocyteClient) Intercept(interceptors ...Interceptor) {
	c.inters.Oocyte = append(c.inters.Oocyte, interceptors...)
}

// Create returns a builder for creating a Oocyte entity.
func (c *OocyteClient) Create() *OocyteCreate {
	mutation := newOocyteMutation(c.config, OpCreate)
	return &OocyteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Oocyte entities.
func (c *OocyteClient) CreateBulk(builders ...*OocyteCreate) *OocyteCreateBulk {
	return &OocyteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OocyteClient) MapCreateBulk(slice any, setFunc func(*OocyteCreate, int)) *OocyteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OocyteCreateBulk{err: fmt.Errorf("calling to OocyteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OocyteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OocyteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Oocyte.
func (c *OocyteClient) Update() *OocyteUpdate {
	mutation := newOocyteMutation(c.config, OpUpdate)
	return &OocyteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OocyteClient) UpdateOne(_m *Oocyte) *OocyteUpdateOne {
	mutation := newOocyteMutation(c.config, OpUpdateOne, withOocyte(_m))
	return &OocyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OocyteClient) UpdateOneID(id uuid.UUID) *OocyteUpdateOne {
	mutation := newOocyteMutation(c.config, OpUpdateOne, withOocyteID(id))
	return &OocyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Oocyte.
func (c *OocyteClient) Delete() *OocyteDelete {
	mutation := newOocyteMutation(c.config, OpDelete)
	return &OocyteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OocyteClient) DeleteOne(_m *Oocyte) *OocyteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OocyteClient) DeleteOneID(id uuid.UUID) *OocyteDeleteOne {
	builder := c.Delete().Where(oocyte.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OocyteDeleteOne{builder}
}

// Query returns a query builder for Oocyte.
func (c *OocyteClient) Query() *OocyteQuery {
	return &OocyteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOocyte},
		inters: c.Interceptors(),
	}
}

// Get returns a Oocyte entity by its id.
func (c *OocyteClient) Get(ctx context.Context, id uuid.UUID) (*Oocyte, error) {
	return c.Query().Where(oocyte.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OocyteClient) GetX(ctx context.Context, id uuid.UUID) *Oocyte {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPuncture queries the puncture edge of a Oocyte.
func (c *OocyteClient) QueryPuncture(_m *Oocyte) *PunctureQuery {
	query := (&PunctureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(oocyte.Table, oocyte.FieldID, id),
			sqlgraph.To(puncture.Table, puncture.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, oocyte.PunctureTable, oocyte.PunctureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStateHistory queries the state_history edge of a Oocyte.
func (c *OocyteClient) QueryStateHistory(_m *Oocyte) *OocyteStateHistoryQuery {
	query := (&OocyteStateHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(oocyte.Table, oocyte.FieldID, id),
			sqlgraph.To(oocytestatehistory.Table, oocytestatehistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, oocyte.StateHistoryTable, oocyte.StateHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEmbryo queries the embryo edge of a Oocyte.
func (c *OocyteClient) QueryEmbryo(_m *Oocyte) *EmbryoQuery {
	query := (&EmbryoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(oocyte.Table, oocyte.FieldID, id),
			sqlgraph.To(embryo.Table, embryo.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, oocyte.EmbryoTable, oocyte.EmbryoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OocyteClient) Hooks() []Hook {
	return c.hooks.Oocyte
}

// Interceptors returns the client interceptors.
func (c *OocyteClient) Interceptors() []Interceptor {
	return c.inters.Oocyte
}

func (c *OocyteClient) mutate(ctx context.Context, m *OocyteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OocyteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OocyteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OocyteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OocyteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Oocyte mutation op: %q", m.Op())
	}
}

// OocyteStateHistoryClient is a client for the OocyteStateHistory schema.
type OocyteStateHistoryClient struct {
	config
}

// NewOocyteStateHistoryClient returns a client for the OocyteStateHistory from the given config.
func NewOocyteStateHistoryClient(c config) *OocyteStateHistoryClient {
	return &OocyteStateHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oocytestatehistory.Hooks(f(g(h())))`.
func (c *OocyteStateHistoryClient) Use(hooks ...Hook) {
	c.hooks.OocyteStateHistory = append(c.hooks.OocyteStateHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oocytestatehistory.Intercept(f(g(h())))`.
func (c *OocyteStateHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.OocyteStateHistory = append(c.inters.OocyteStateHistory, interceptors...)
}

// Create returns a builder for creating a OocyteStateHistory entity.
func (c *OocyteStateHistoryClient) Create() *OocyteStateHistoryCreate {
	mutation := newOocyteStateHistoryMutation(c.config, OpCreate)
	return &OocyteStateHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OocyteStateHistory entities.
func (c *OocyteStateHistoryClient) CreateBulk(builders ...*OocyteStateHistoryCreate) *OocyteStateHistoryCreateBulk {
	return &OocyteStateHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OocyteStateHistoryClient) MapCreateBulk(slice any, setFunc func(*OocyteStateHistoryCreate, int)) *OocyteStateHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OocyteStateHistoryCreateBulk{err: fmt.Errorf("calling to OocyteStateHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OocyteStateHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OocyteStateHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OocyteStateHistory.
func (c *OocyteStateHistoryClient) Update() *OocyteStateHistoryUpdate {
	mutation := newOocyteStateHistoryMutation(c.config, OpUpdate)
	return &OocyteStateHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OocyteStateHistoryClient) UpdateOne(_m *OocyteStateHistory) *OocyteStateHistoryUpdateOne {
	mutation := newOocyteStateHistoryMutation(c.config, OpUpdateOne, withOocyteStateHistory(_m))
	return &OocyteStateHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OocyteStateHistoryClient) UpdateOneID(id uuid.UUID) *OocyteStateHistoryUpdateOne {
	mutation := newOocyteStateHistoryMutation(c.config, OpUpdateOne, withOocyteStateHistoryID(id))
	return &OocyteStateHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OocyteStateHistory.
func (c *OocyteStateHistoryClient) Delete() *OocyteStateHistoryDelete {
	mutation := newOocyteStateHistoryMutation(c.config, OpDelete)
	return &OocyteStateHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OocyteStateHistoryClient) DeleteOne(_m *OocyteStateHistory) *OocyteStateHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OocyteStateHistoryClient) DeleteOneID(id uuid.UUID) *OocyteStateHistoryDeleteOne {
	builder := c.Delete().Where(oocytestatehistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OocyteStateHistoryDeleteOne{builder}
}

// Query returns a query builder for OocyteStateHistory.
func (c *OocyteStateHistoryClient) Query() *OocyteStateHistoryQuery {
	return &OocyteStateHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOocyteStateHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a OocyteStateHistory entity by its id.
func (c *OocyteStateHistoryClient) Get(ctx context.Context, id uuid.UUID) (*OocyteStateHistory, error) {
	return c.Query().Where(oocytestatehistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OocyteStateHistoryClient) GetX(ctx context.Context, id uuid.UUID) *OocyteStateHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOocyte queries the oocyte edge of a OocyteStateHistory.
func (c *OocyteStateHistoryClient) QueryOocyte(_m *OocyteStateHistory) *OocyteQuery {
	query := (&OocyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(oocytestatehistory.Table, oocytestatehistory.FieldID, id),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, oocytestatehistory.OocyteTable, oocytestatehistory.OocyteColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChangedBy queries the changed_by edge of a OocyteStateHistory.
func (c *OocyteStateHistoryClient) QueryChangedBy(_m *OocyteStateHistory) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(oocytestatehistory.Table, oocytestatehistory.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, oocytestatehistory.ChangedByTable, oocytestatehistory.ChangedByColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OocyteStateHistoryClient) Hooks() []Hook {
	return c.hooks.OocyteStateHistory
}

// Interceptors returns the client interceptors.
func (c *OocyteStateHistoryClient) Interceptors() []Interceptor {
	return c.inters.OocyteStateHistory
}

func (c *OocyteStateHistoryClient) mutate(ctx context.Context, m *OocyteStateHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OocyteStateHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OocyteStateHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OocyteStateHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OocyteStateHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown OocyteStateHistory mutation op: %q", m.Op())
	}
}

// PartnerClient is a client for the Partner schema.
type PartnerClient struct {
	config
}

// NewPartnerClient returns a client for the Partner from the given config.
func NewPartnerClient(c config) *PartnerClient {
	return &PartnerClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `partner.Hooks(f(g(h())))`.
func (c *PartnerClient) Use(hooks ...Hook) {
	c.hooks.Partner = append(c.hooks.Partner, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `partner.Intercept(f(g(h())))`.
func (c *PartnerClient) Intercept(interceptors ...Interceptor) {
	c.inters.Partner = append(c.inters.Partner, interceptors...)
}

// Create returns a builder for creating a Partner entity.
func (c *PartnerClient) Create() *PartnerCreate {
	mutation := newPartnerMutation(c.config, OpCreate)
	return &PartnerCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Partner entities.
func (c *PartnerClient) CreateBulk(builders ...*PartnerCreate) *PartnerCreateBulk {
	return &PartnerCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PartnerClient) MapCreateBulk(slice any, setFunc func(*PartnerCreate, int)) *PartnerCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PartnerCreateBulk{err: fmt.Errorf("calling to PartnerClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PartnerCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PartnerCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Partner.
func (c *PartnerClient) Update() *PartnerUpdate {
	mutation := newPartnerMutation(c.config, OpUpdate)
	return &PartnerUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PartnerClient) UpdateOne(_m *Partner) *PartnerUpdateOne {
	mutation := newPartnerMutation(c.config, OpUpdateOne, withPartner(_m))
	return &PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PartnerClient) UpdateOneID(id uuid.UUID) *PartnerUpdateOne {
	mutation := newPartnerMutation(c.config, OpUpdateOne, withPartnerID(id))
	return &PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Partner.
func (c *PartnerClient) Delete() *PartnerDelete {
	mutation := newPartnerMutation(c.config, OpDelete)
	return &PartnerDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PartnerClient) DeleteOne(_m *Partner) *PartnerDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PartnerClient) DeleteOneID(id uuid.UUID) *PartnerDeleteOne {
	builder := c.Delete().Where(partner.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PartnerDeleteOne{builder}
}

// Query returns a query builder for Partner.
func (c *PartnerClient) Query() *PartnerQuery {
	return &PartnerQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePartner},
		inters: c.Interceptors(),
	}
}

// Get returns a Partner entity by its id.
func (c *PartnerClient) Get(ctx context.Context, id uuid.UUID) (*Partner, error) {
	return c.Query().Where(partner.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PartnerClient) GetX(ctx context.Context, id uuid.UUID) *Partner {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Partner.
func (c *PartnerClient) QueryPatient(_m *Partner) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(partner.Table, partner.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, partner.PatientTable, partner.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PartnerClient) Hooks() []Hook {
	return c.hooks.Partner
}

// Interceptors returns the client interceptors.
func (c *PartnerClient) Interceptors() []Interceptor {
	return c.inters.Partner
}

func (c *PartnerClient) mutate(ctx context.Context, m *PartnerMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PartnerCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PartnerUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PartnerUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PartnerDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Partner mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Patient.
func (c *PatientClient) QueryUser(_m *Patient) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, patient.UserTable, patient.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedicalHistory queries the medical_history edge of a Patient.
func (c *PatientClient) QueryMedicalHistory(_m *Patient) *MedicalHistoryQuery {
	query := (&MedicalHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(medicalhistory.Table, medicalhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, patient.MedicalHistoryTable, patient.MedicalHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPartner queries the partner edge of a Patient.
func (c *PatientClient) QueryPartner(_m *Patient) *PartnerQuery {
	query := (&PartnerClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(partner.Table, partner.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, patient.PartnerTable, patient.PartnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTreatments queries the treatments edge of a Patient.
func (c *PatientClient) QueryTreatments(_m *Patient) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(patient.Table, patient.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, patient.TreatmentsTable, patient.TreatmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// PunctureClient is a client for the Puncture schema.
type PunctureClient struct {
	config
}

// NewPunctureClient returns a client for the Puncture from the given config.
func NewPunctureClient(c config) *PunctureClient {
	return &PunctureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `puncture.Hooks(f(g(h())))`.
func (c *PunctureClient) Use(hooks ...Hook) {
	c.hooks.Puncture = append(c.hooks.Puncture, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `puncture.Intercept(f(g(h())))`.
func (c *PunctureClient) Intercept(interceptors ...Interceptor) {
	c.inters.Puncture = append(c.inters.Puncture, interceptors...)
}

// Create returns a builder for creating a Puncture entity.
func (c *PunctureClient) Create() *PunctureCreate {
	mutation := newPunctureMutation(c.config, OpCreate)
	return &PunctureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Puncture entities.
func (c *PunctureClient) CreateBulk(builders ...*PunctureCreate) *PunctureCreateBulk {
	return &PunctureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PunctureClient) MapCreateBulk(slice any, setFunc func(*PunctureCreate, int)) *PunctureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PunctureCreateBulk{err: fmt.Errorf("calling to PunctureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PunctureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PunctureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Puncture.
func (c *PunctureClient) Update() *PunctureUpdate {
	mutation := newPunctureMutation(c.config, OpUpdate)
	return &PunctureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PunctureClient) UpdateOne(_m *Puncture) *PunctureUpdateOne {
	mutation := newPunctureMutation(c.config, OpUpdateOne, withPuncture(_m))
	return &PunctureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PunctureClient) UpdateOneID(id uuid.UUID) *PunctureUpdateOne {
	mutation := newPunctureMutation(c.config, OpUpdateOne, withPunctureID(id))
	return &PunctureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Puncture.
func (c *PunctureClient) Delete() *PunctureDelete {
	mutation := newPunctureMutation(c.config, OpDelete)
	return &PunctureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PunctureClient) DeleteOne(_m *Puncture) *PunctureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PunctureClient) DeleteOneID(id uuid.UUID) *PunctureDeleteOne {
	builder := c.Delete().Where(puncture.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PunctureDeleteOne{builder}
}

// Query returns a query builder for Puncture.
func (c *PunctureClient) Query() *PunctureQuery {
	return &PunctureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePuncture},
		inters: c.Interceptors(),
	}
}

// Get returns a Puncture entity by its id.
func (c *PunctureClient) Get(ctx context.Context, id uuid.UUID) (*Puncture, error) {
	return c.Query().Where(puncture.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PunctureClient) GetX(ctx context.Context, id uuid.UUID) *Puncture {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a Puncture.
func (c *PunctureClient) QueryTreatment(_m *Puncture) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(puncture.Table, puncture.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, puncture.TreatmentTable, puncture.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOperator queries the operator edge of a Puncture.
func (c *PunctureClient) QueryOperator(_m *Puncture) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(puncture.Table, puncture.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, puncture.OperatorTable, puncture.OperatorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOocytes queries the oocytes edge of a Puncture.
func (c *PunctureClient) QueryOocytes(_m *Puncture) *OocyteQuery {
	query := (&OocyteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(puncture.Table, puncture.FieldID, id),
			sqlgraph.To(oocyte.Table, oocyte.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, puncture.OocytesTable, puncture.OocytesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PunctureClient) Hooks() []Hook {
	return c.hooks.Puncture
}

// Interceptors returns the client interceptors.
func (c *PunctureClient) Interceptors() []Interceptor {
	return c.inters.Puncture
}

func (c *PunctureClient) mutate(ctx context.Context, m *PunctureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PunctureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PunctureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PunctureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PunctureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Puncture mutation op: %q", m.Op())
	}
}

// StudyResultClient is a client for the StudyResult schema.
type StudyResultClient struct {
	config
}

// NewStudyResultClient returns a client for the StudyResult from the given config.
func NewStudyResultClient(c config) *StudyResultClient {
	return &StudyResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `studyresult.Hooks(f(g(h())))`.
func (c *StudyResultClient) Use(hooks ...Hook) {
	c.hooks.StudyResult = append(c.hooks.StudyResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `studyresult.Intercept(f(g(h())))`.
func (c *StudyResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.StudyResult = append(c.inters.StudyResult, interceptors...)
}

// Create returns a builder for creating a StudyResult entity.
func (c *StudyResultClient) Create() *StudyResultCreate {
	mutation := newStudyResultMutation(c.config, OpCreate)
	return &StudyResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StudyResult entities.
func (c *StudyResultClient) CreateBulk(builders ...*StudyResultCreate) *StudyResultCreateBulk {
	return &StudyResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StudyResultClient) MapCreateBulk(slice any, setFunc func(*StudyResultCreate, int)) *StudyResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StudyResultCreateBulk{err: fmt.Errorf("calling to StudyResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StudyResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StudyResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StudyResult.
func (c *StudyResultClient) Update() *StudyResultUpdate {
	mutation := newStudyResultMutation(c.config, OpUpdate)
	return &StudyResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StudyResultClient) UpdateOne(_m *StudyResult) *StudyResultUpdateOne {
	mutation := newStudyResultMutation(c.config, OpUpdateOne, withStudyResult(_m))
	return &StudyResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StudyResultClient) UpdateOneID(id uuid.UUID) *StudyResultUpdateOne {
	mutation := newStudyResultMutation(c.config, OpUpdateOne, withStudyResultID(id))
	return &StudyResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StudyResult.
func (c *StudyResultClient) Delete() *StudyResultDelete {
	mutation := newStudyResultMutation(c.config, OpDelete)
	return &StudyResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StudyResultClient) DeleteOne(_m *StudyResult) *StudyResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StudyResultClient) DeleteOneID(id uuid.UUID) *StudyResultDeleteOne {
	builder := c.Delete().Where(studyresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StudyResultDeleteOne{builder}
}

// Query returns a query builder for StudyResult.
func (c *StudyResultClient) Query() *StudyResultQuery {
	return &StudyResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStudyResult},
		inters: c.Interceptors(),
	}
}

// Get returns a StudyResult entity by its id.
func (c *StudyResultClient) Get(ctx context.Context, id uuid.UUID) (*StudyResult, error) {
	return c.Query().Where(studyresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StudyResultClient) GetX(ctx context.Context, id uuid.UUID) *StudyResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a StudyResult.
func (c *StudyResultClient) QueryTreatment(_m *StudyResult) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(studyresult.Table, studyresult.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, studyresult.TreatmentTable, studyresult.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StudyResultClient) Hooks() []Hook {
	return c.hooks.StudyResult
}

// Interceptors returns the client interceptors.
func (c *StudyResultClient) Interceptors() []Interceptor {
	return c.inters.StudyResult
}

func (c *StudyResultClient) mutate(ctx context.Context, m *StudyResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StudyResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StudyResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StudyResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StudyResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StudyResult mutation op: %q", m.Op())
	}
}

// TreatmentClient is a client for the Treatment schema.
type TreatmentClient struct {
	config
}

// NewTreatmentClient returns a client for the Treatment from the given config.
func NewTreatmentClient(c config) *TreatmentClient {
	return &TreatmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `treatment.Hooks(f(g(h())))`.
func (c *TreatmentClient) Use(hooks ...Hook) {
	c.hooks.Treatment = append(c.hooks.Treatment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `treatment.Intercept(f(g(h())))`.
func (c *TreatmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Treatment = append(c.inters.Treatment, interceptors...)
}

// Create returns a builder for creating a Treatment entity.
func (c *TreatmentClient) Create() *TreatmentCreate {
	mutation := newTreatmentMutation(c.config, OpCreate)
	return &TreatmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Treatment entities.
func (c *TreatmentClient) CreateBulk(builders ...*TreatmentCreate) *TreatmentCreateBulk {
	return &TreatmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TreatmentClient) MapCreateBulk(slice any, setFunc func(*TreatmentCreate, int)) *TreatmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TreatmentCreateBulk{err: fmt.Errorf("calling to TreatmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TreatmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TreatmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Treatment.
func (c *TreatmentClient) Update() *TreatmentUpdate {
	mutation := newTreatmentMutation(c.config, OpUpdate)
	return &TreatmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TreatmentClient) UpdateOne(_m *Treatment) *TreatmentUpdateOne {
	mutation := newTreatmentMutation(c.config, OpUpdateOne, withTreatment(_m))
	return &TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TreatmentClient) UpdateOneID(id uuid.UUID) *TreatmentUpdateOne {
	mutation := newTreatmentMutation(c.config, OpUpdateOne, withTreatmentID(id))
	return &TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Treatment.
func (c *TreatmentClient) Delete() *TreatmentDelete {
	mutation := newTreatmentMutation(c.config, OpDelete)
	return &TreatmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TreatmentClient) DeleteOne(_m *Treatment) *TreatmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TreatmentClient) DeleteOneID(id uuid.UUID) *TreatmentDeleteOne {
	builder := c.Delete().Where(treatment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TreatmentDeleteOne{builder}
}

// Query returns a query builder for Treatment.
func (c *TreatmentClient) Query() *TreatmentQuery {
	return &TreatmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTreatment},
		inters: c.Interceptors(),
	}
}

// Get returns a Treatment entity by its id.
func (c *TreatmentClient) Get(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return c.Query().Where(treatment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TreatmentClient) GetX(ctx context.Context, id uuid.UUID) *Treatment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a Treatment.
func (c *TreatmentClient) QueryPatient(_m *Treatment) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, treatment.PatientTable, treatment.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a Treatment.
func (c *TreatmentClient) QueryDoctor(_m *Treatment) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, treatment.DoctorTable, treatment.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMonitoringDays queries the monitoring_days edge of a Treatment.
func (c *TreatmentClient) QueryMonitoringDays(_m *Treatment) *MonitoringDayQuery {
	query := (&MonitoringDayClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(monitoringday.Table, monitoringday.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.MonitoringDaysTable, treatment.MonitoringDaysColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStudyResults queries the study_results edge of a Treatment.
func (c *TreatmentClient) QueryStudyResults(_m *Treatment) *StudyResultQuery {
	query := (&StudyResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(studyresult.Table, studyresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.StudyResultsTable, treatment.StudyResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMedicalOrders queries the medical_orders edge of a Treatment.
func (c *TreatmentClient) QueryMedicalOrders(_m *Treatment) *MedicalOrderQuery {
	query := (&MedicalOrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(medicalorder.Table, medicalorder.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.MedicalOrdersTable, treatment.MedicalOrdersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPuncture queries the puncture edge of a Treatment.
func (c *TreatmentClient) QueryPuncture(_m *Treatment) *PunctureQuery {
	query := (&PunctureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(puncture.Table, puncture.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, treatment.PunctureTable, treatment.PunctureColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TreatmentClient) Hooks() []Hook {
	return c.hooks.Treatment
}

// Interceptors returns the client interceptors.
func (c *TreatmentClient) Interceptors() []Interceptor {
	return c.inters.Treatment
}

func (c *TreatmentClient) mutate(ctx context.Context, m *TreatmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TreatmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TreatmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TreatmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Treatment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatientProfile queries the patient_profile edge of a User.
func (c *UserClient) QueryPatientProfile(_m *User) *PatientQuery {
	query := (&PatientClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(patient.Table, patient.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.PatientProfileTable, user.PatientProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTreatmentsAsDoctor queries the treatments_as_doctor edge of a User.
func (c *UserClient) QueryTreatmentsAsDoctor(_m *User) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, user.TreatmentsAsDoctorTable, user.TreatmentsAsDoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPuncturesPerformed queries the punctures_performed edge of a User.
func (c *UserClient) QueryPuncturesPerformed(_m *User) *PunctureQuery {
	query := (&PunctureClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(puncture.Table, puncture.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, user.PuncturesPerformedTable, user.PuncturesPerformedColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Embryo, EmbryoTransfer, MedicalHistory, MedicalOrder, MonitoringDay, Oocyte,
		OocyteStateHistory, Partner, Patient, Puncture, StudyResult, Treatment,
		User []ent.Hook
	}
	inters struct {
		Embryo, EmbryoTransfer, MedicalHistory, MedicalOrder, MonitoringDay, Oocyte,
		OocyteStateHistory, Partner, Patient, Puncture, StudyResult, Treatment,
		User []ent.Interceptor
	}
)
