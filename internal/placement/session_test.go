package placement_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/admission"
	"github.com/osse101/GreenMap_Go/internal/domain"
	"github.com/osse101/GreenMap_Go/internal/geometry"
	"github.com/osse101/GreenMap_Go/internal/placement"
	"github.com/osse101/GreenMap_Go/internal/tree"
	"github.com/osse101/GreenMap_Go/internal/viewport"
	"github.com/osse101/GreenMap_Go/mocks"
)

var (
	inside  = domain.Point{X: 400, Y: 300}
	outside = domain.Point{X: 0, Y: 0}
	fixedAt = time.Date(2025, 3, 21, 10, 0, 0, 0, time.UTC)
	unit    = geometry.UnitScale()
)

type fixture struct {
	session  *placement.Session
	trees    *mocks.MockTreeService
	admitter *mocks.MockAdmissionAdmitter
}

func newFixture(t *testing.T, requireImage bool) fixture {
	t.Helper()
	trees := mocks.NewMockTreeService(t)
	trees.EXPECT().Boundary().Return(geometry.DefaultRegion()).Maybe()
	admitter := mocks.NewMockAdmissionAdmitter(t)
	s := placement.NewSession("sess-1", trees, admitter, placement.Options{
		RequireImage: requireImage,
		Now:          func() time.Time { return fixedAt },
	})
	return fixture{session: s, trees: trees, admitter: admitter}
}

func admitted() *admission.Result {
	return &admission.Result{Payload: domain.ImagePayload{
		Data: []byte{0xff, 0xd8, 0xff}, MIME: admission.MIMEJPEG, Width: 800, Height: 533,
	}}
}

// openForm drives the session from idle to an open form at inside.
func openForm(t *testing.T, f fixture) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.session.BeginDrag(ctx))
	opened, err := f.session.Drop(ctx, inside, unit)
	require.NoError(t, err)
	require.True(t, opened)
}

func TestDrop_InsideOpensForm(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)

	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateFormOpen, snap.State)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, inside, snap.Pending.DropPoint)
	assert.Equal(t, fixedAt.UnixMilli(), snap.Pending.ProvisionalID)
	assert.Equal(t, domain.DefaultTreeColor, snap.Form.Color)
	assert.Empty(t, snap.Form.Name)
}

func TestDrop_OutsideReturnsToIdle(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.session.BeginDrag(ctx))

	opened, err := f.session.Drop(ctx, outside, unit)

	require.NoError(t, err)
	assert.False(t, opened)
	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateIdle, snap.State)
	assert.Nil(t, snap.Pending)
}

func TestDrop_UsesViewport(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.session.Gestures([]viewport.Event{
		viewport.Wheel{Pos: domain.Point{X: 100, Y: 80}, DeltaY: -1},
		viewport.Wheel{Pos: domain.Point{X: 100, Y: 80}, DeltaY: -1},
	})
	vp := f.session.Snapshot().Viewport
	require.Greater(t, vp.Zoom, 1.0)
	screen := geometry.ScreenFromWorld(inside, vp, unit)

	require.NoError(t, f.session.BeginDrag(ctx))
	opened, err := f.session.Drop(ctx, screen, unit)
	require.NoError(t, err)
	require.True(t, opened)
	assert.InDelta(t, inside.X, f.session.Snapshot().Pending.DropPoint.X, 1e-9)
	assert.InDelta(t, inside.Y, f.session.Snapshot().Pending.DropPoint.Y, 1e-9)
}

func TestDrop_WithoutDrag(t *testing.T) {
	f := newFixture(t, true)
	_, err := f.session.Drop(context.Background(), inside, unit)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBeginDrag_BlockedWhileFormOpen(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)

	err := f.session.BeginDrag(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, placement.StateFormOpen, f.session.State())
}

func TestBeginDrag_Idempotent(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.session.BeginDrag(ctx))
	require.NoError(t, f.session.BeginDrag(ctx))
	assert.Equal(t, placement.StateDragActive, f.session.State())
}

func TestUpdateForm(t *testing.T) {
	f := newFixture(t, true)
	assert.ErrorIs(t, f.session.UpdateForm("x", ""), domain.ErrInvalidTransition)

	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Oak", "#123456"))
	require.NoError(t, f.session.UpdateForm("Oak tree", ""))

	form := f.session.Snapshot().Form
	assert.Equal(t, "Oak tree", form.Name)
	assert.Equal(t, "#123456", form.Color)
}

func TestAttachImage_Admitted(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	up := admission.Upload{Data: []byte("photo"), DeclaredMIME: admission.MIMEJPEG}
	f.admitter.EXPECT().Admit(mock.Anything, up).Return(admitted(), nil).Once()

	res, err := f.session.AttachImage(context.Background(), up)

	require.NoError(t, err)
	assert.Equal(t, 800, res.Payload.Width)
	snap := f.session.Snapshot()
	require.NotNil(t, snap.Form.Image)
	assert.Equal(t, admission.MIMEJPEG, snap.Form.Image.MIME)
	assert.Contains(t, snap.ImagePreview, "data:image/jpeg;base64,")
	assert.False(t, snap.Admitting)
}

func TestAttachImage_RejectionClearsImage(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()

	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).Return(admitted(), nil).Once()
	_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("first")})
	require.NoError(t, err)

	rej := &admission.Rejection{Stage: admission.StageContentSafety, Reason: "unsafe"}
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).Return(nil, rej).Once()
	_, err = f.session.AttachImage(ctx, admission.Upload{Data: []byte("second")})

	got, ok := admission.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, admission.StageContentSafety, got.Stage)
	snap := f.session.Snapshot()
	assert.Nil(t, snap.Form.Image)
	assert.Equal(t, "unsafe", snap.Form.ImageError)
	assert.Equal(t, placement.StateFormOpen, snap.State)
}

func TestAttachImage_TinyPhotoNeverClassified(t *testing.T) {
	trees := mocks.NewMockTreeService(t)
	trees.EXPECT().Boundary().Return(geometry.DefaultRegion())
	c := mocks.NewMockClassifier(t)
	pipeline := admission.NewPipeline(admission.DefaultConfig(), c, nil)
	s := placement.NewSession("sess-2", trees, pipeline, placement.Options{RequireImage: true})
	ctx := context.Background()
	require.NoError(t, s.BeginDrag(ctx))
	_, err := s.Drop(ctx, inside, unit)
	require.NoError(t, err)

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 48, 48))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	img.Set(0, 0, color.White)
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 50}))
	require.Less(t, buf.Len(), 3*1024)

	_, err = s.AttachImage(ctx, admission.Upload{Data: buf.Bytes(), DeclaredMIME: admission.MIMEJPEG})

	rej, ok := admission.AsRejection(err)
	require.True(t, ok)
	assert.Equal(t, admission.StageStructural, rej.Stage)
	assert.Equal(t, admission.ReasonTooSmall, rej.Reason)
	assert.Equal(t, admission.ReasonTooSmall, s.Snapshot().Form.ImageError)
	c.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}

func TestAttachImage_CancelledMidFlightDiscarded(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, admission.Upload) (*admission.Result, error) {
			close(started)
			<-release
			return admitted(), nil
		}).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("slow")})
		errCh <- err
	}()

	<-started
	assert.True(t, f.session.Snapshot().Admitting)
	require.NoError(t, f.session.Cancel(ctx))
	close(release)

	assert.ErrorIs(t, <-errCh, domain.ErrPlacementCancelled)
	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateIdle, snap.State)
	assert.Nil(t, snap.Form.Image)
	assert.False(t, snap.Admitting)
}

func TestAttachImage_ReplacedPlacementDiscarded(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, admission.Upload) (*admission.Result, error) {
			close(started)
			<-release
			return admitted(), nil
		}).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("slow")})
		errCh <- err
	}()

	<-started
	require.NoError(t, f.session.Cancel(ctx))
	openForm(t, f)
	close(release)

	assert.ErrorIs(t, <-errCh, domain.ErrPlacementCancelled)
	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateFormOpen, snap.State)
	assert.Nil(t, snap.Form.Image)
}

func TestAttachImage_SecondWhileInFlight(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, admission.Upload) (*admission.Result, error) {
			close(started)
			<-release
			return admitted(), nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("first")})
		done <- err
	}()
	<-started

	_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("second")})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	close(release)
	require.NoError(t, <-done)
	assert.NotNil(t, f.session.Snapshot().Form.Image)
}

func TestSubmit_EmptyNameBlocked(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("   ", ""))

	_, err := f.session.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrNameRequired)
	assert.Equal(t, placement.StateFormOpen, f.session.State())
	f.trees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_ImageRequired(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Oak", ""))

	_, err := f.session.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrImageRequired)
	f.trees.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_WithoutImageWhenOptional(t *testing.T) {
	f := newFixture(t, false)
	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Oak", ""))
	f.trees.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r tree.CreateRequest) bool {
		return r.Image == nil && r.Name == "Oak"
	})).Return(&domain.Tree{ID: 3, Name: "Oak"}, nil).Once()

	created, err := f.session.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).Return(admitted(), nil).Once()
	_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("photo")})
	require.NoError(t, err)
	require.NoError(t, f.session.UpdateForm("Olive", "#00ff00"))

	f.trees.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r tree.CreateRequest) bool {
		return r.X == inside.X && r.Y == inside.Y && r.Name == "Olive" && r.Color == "#00ff00" &&
			r.Image != nil && r.SessionID == "sess-1"
	})).Return(&domain.Tree{ID: 9, Name: "Olive"}, nil).Once()

	created, err := f.session.Submit(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateIdle, snap.State)
	assert.Nil(t, snap.Pending)
	assert.Equal(t, placement.Form{}, snap.Form)
}

func TestSubmit_StoreFailureKeepsForm(t *testing.T) {
	f := newFixture(t, true)
	openForm(t, f)
	ctx := context.Background()
	f.admitter.EXPECT().Admit(mock.Anything, mock.Anything).Return(admitted(), nil).Once()
	_, err := f.session.AttachImage(ctx, admission.Upload{Data: []byte("photo")})
	require.NoError(t, err)
	require.NoError(t, f.session.UpdateForm("Olive", ""))

	f.trees.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	_, err = f.session.Submit(ctx)

	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)
	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateFormOpen, snap.State)
	assert.Equal(t, "Olive", snap.Form.Name)
	require.NotNil(t, snap.Form.Image)
	assert.NotEmpty(t, snap.ImagePreview)
	require.NotNil(t, snap.Pending)

	// retry succeeds with the same input
	f.trees.EXPECT().Create(mock.Anything, mock.Anything).Return(&domain.Tree{ID: 1}, nil).Once()
	_, err = f.session.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, placement.StateIdle, f.session.State())
}

func TestSubmit_ValidationErrorNotWrapped(t *testing.T) {
	f := newFixture(t, false)
	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Olive", "green"))
	f.trees.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &tree.ValidationError{}).Once()

	_, err := f.session.Submit(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrPersistenceFailed)
	assert.Equal(t, placement.StateFormOpen, f.session.State())
}

func TestCancel(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	require.NoError(t, f.session.Cancel(ctx))

	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Oak", ""))
	require.NoError(t, f.session.Cancel(ctx))

	snap := f.session.Snapshot()
	assert.Equal(t, placement.StateIdle, snap.State)
	assert.Nil(t, snap.Pending)
	assert.Empty(t, snap.Form.Name)

	require.NoError(t, f.session.BeginDrag(ctx))
	require.NoError(t, f.session.Cancel(ctx))
	assert.Equal(t, placement.StateIdle, f.session.State())
}

func TestCancel_DuringSubmitRefused(t *testing.T) {
	f := newFixture(t, false)
	openForm(t, f)
	require.NoError(t, f.session.UpdateForm("Oak", ""))
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.trees.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, tree.CreateRequest) (*domain.Tree, error) {
			close(started)
			<-release
			return &domain.Tree{ID: 4}, nil
		}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.session.Submit(ctx)
		done <- err
	}()
	<-started

	assert.Equal(t, placement.StateSubmitting, f.session.State())
	assert.ErrorIs(t, f.session.Cancel(ctx), domain.ErrInvalidTransition)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, placement.StateIdle, f.session.State())
}

func TestHover(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	f.trees.EXPECT().List(mock.Anything).Return([]domain.Tree{
		{ID: 5, X: 100, Y: 100},
		{ID: 6, X: 400, Y: 300},
	}, nil)

	id, err := f.session.Hover(ctx, domain.Point{X: 402, Y: 301}, unit)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(6), *id)
	assert.Equal(t, int64(6), *f.session.Snapshot().HoveredID)

	id, err = f.session.Hover(ctx, domain.Point{X: 700, Y: 50}, unit)
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Nil(t, f.session.Snapshot().HoveredID)
}

func TestHover_ListError(t *testing.T) {
	f := newFixture(t, true)
	f.trees.EXPECT().List(mock.Anything).Return(nil, domain.ErrDatabase)

	_, err := f.session.Hover(context.Background(), inside, unit)
	assert.ErrorIs(t, err, domain.ErrDatabase)
}

func TestRenderPNG(t *testing.T) {
	f := newFixture(t, true)
	f.trees.EXPECT().List(mock.Anything).Return([]domain.Tree{{ID: 1, X: 400, Y: 300, Color: "#16a34a"}}, nil)

	out, err := f.session.RenderPNG(context.Background(), 160, 120)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("\x89PNG")))
}
