package system

import (
	"errors"
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
)

type combatFixture struct {
	ecs      *entity.ECS
	cfg      *config.Config
	clock    *utils.ManualClock
	combat   *CombatSystem
	turret   *component.Turret
	turretID types.EntityID
	shots    []event.ShotData
}

// newCombatFixture ставит турель первого уровня в тайл (0,0): центр (24,24), радиус 90.
func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	f := &combatFixture{
		ecs:   entity.NewECS(),
		cfg:   config.Default(),
		clock: utils.NewManualClock(0),
	}
	d := event.NewDispatcher()
	d.SubscribeFunc(func(e event.Event) {
		f.shots = append(f.shots, e.Data.(event.ShotData))
	}, event.TurretFired)
	f.combat = NewCombatSystem(f.ecs, f.cfg, catalog, f.clock, d)

	tier, err := catalog.Tier(1)
	if err != nil {
		t.Fatal(err)
	}
	f.turret = component.NewTurret(0, 0, f.cfg.TileSize, tier, f.clock.Ticks())
	f.turretID = f.ecs.AddTurret(f.turret)
	return f
}

func (f *combatFixture) addEnemy(t *testing.T, x, y float64, health int) (types.EntityID, *component.Enemy) {
	t.Helper()
	e, err := component.NewEnemy("weak", defs.EnemyDefinition{Health: health, Speed: 2},
		[]component.Vec2{{X: x, Y: y}, {X: x + 500, Y: y}})
	if err != nil {
		t.Fatal(err)
	}
	return f.ecs.AddEnemy(e), e
}

func TestCooldownElapsed(t *testing.T) {
	turret := &component.Turret{CooldownMs: 1500, LastShot: 1000}
	cases := []struct {
		name      string
		now       int64
		gameSpeed float64
		want      bool
	}{
		{"not_yet", 2500, 1, false},
		{"just_after", 2501, 1, true},
		{"double_speed_not_yet", 1750, 2, false},
		{"double_speed", 1751, 2, true},
		{"frozen", 1_000_000, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CooldownElapsed(turret, c.now, c.gameSpeed); got != c.want {
				t.Fatalf("expected %t, got %t", c.want, got)
			}
		})
	}
}

func TestPickTargetFirstInRange(t *testing.T) {
	f := newCombatFixture(t)
	f.addEnemy(t, 500, 500, 10)
	firstID, first := f.addEnemy(t, 50, 24, 10)
	_, nearer := f.addEnemy(t, 30, 24, 10)

	if !f.combat.PickTarget(f.turretID, f.turret) {
		t.Fatalf("expected a target to be picked")
	}
	if f.turret.Target != firstID {
		t.Fatalf("expected the first enemy in range, got %d", f.turret.Target)
	}
	if first.Health != 10-f.cfg.Damage {
		t.Fatalf("damage should be applied on acquisition, health %d", first.Health)
	}
	if nearer.Health != 10 {
		t.Fatalf("only the target takes damage, nearer enemy has %d", nearer.Health)
	}
	if f.turret.Angle != 0 {
		t.Fatalf("expected turret to face right, got %v", f.turret.Angle)
	}
	if len(f.shots) != 1 || f.shots[0].TargetID != firstID || f.shots[0].TurretID != f.turretID {
		t.Fatalf("unexpected shot events %+v", f.shots)
	}
}

func TestPickTargetRangeAndHealth(t *testing.T) {
	cases := []struct {
		name   string
		x, y   float64
		health int
		want   bool
	}{
		{"on_boundary", 24 + 90, 24, 10, true},
		{"just_outside", 24 + 90.5, 24, 10, false},
		{"dead_in_range", 30, 24, 0, false},
		{"below_turret", 24, 24 + 60, 10, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newCombatFixture(t)
			f.addEnemy(t, c.x, c.y, c.health)
			if got := f.combat.PickTarget(f.turretID, f.turret); got != c.want {
				t.Fatalf("expected %t, got %t", c.want, got)
			}
		})
	}
}

func TestUpdateTurretFiringCycle(t *testing.T) {
	f := newCombatFixture(t)
	id, enemy := f.addEnemy(t, 50, 24, 10)

	f.clock.Set(1500)
	f.combat.Update(1)
	if f.turret.HasTarget() {
		t.Fatalf("turret fired before the cooldown elapsed")
	}

	f.clock.Set(1501)
	f.combat.Update(1)
	if f.turret.Target != id {
		t.Fatalf("expected target %d, got %d", id, f.turret.Target)
	}

	// Пока идёт анимация, цель не выбирается заново и урон не повторяется.
	for step := 1; step < f.cfg.AnimationSteps; step++ {
		f.clock.Advance(f.cfg.AnimationDelayMs + 1)
		f.combat.Update(1)
		if !f.turret.HasTarget() {
			t.Fatalf("step %d: target released too early", step)
		}
		if f.turret.FrameIndex != step {
			t.Fatalf("expected frame %d, got %d", step, f.turret.FrameIndex)
		}
	}
	if enemy.Health != 10-f.cfg.Damage {
		t.Fatalf("expected a single hit, health %d", enemy.Health)
	}

	f.clock.Advance(f.cfg.AnimationDelayMs + 1)
	f.combat.Update(1)
	if f.turret.HasTarget() || f.turret.FrameIndex != 0 {
		t.Fatalf("animation should reset the turret, got target=%d frame=%d", f.turret.Target, f.turret.FrameIndex)
	}
	if f.turret.LastShot != f.clock.Ticks() {
		t.Fatalf("cooldown should restart at the end of the animation")
	}

	// Сразу после цикла турель перезаряжается.
	f.clock.Advance(1)
	f.combat.Update(1)
	if f.turret.HasTarget() {
		t.Fatalf("turret re-acquired during cooldown")
	}
}

func TestPlayAnimationWaitsForDelay(t *testing.T) {
	f := newCombatFixture(t)
	f.turret.Target = 42
	f.turret.LastFrameUpdate = 100

	f.clock.Set(100 + f.cfg.AnimationDelayMs)
	f.combat.PlayAnimation(f.turret)
	if f.turret.FrameIndex != 0 {
		t.Fatalf("frame advanced before the delay elapsed")
	}
	f.clock.Advance(1)
	f.combat.PlayAnimation(f.turret)
	if f.turret.FrameIndex != 1 {
		t.Fatalf("expected frame 1, got %d", f.turret.FrameIndex)
	}
}

func TestUpgrade(t *testing.T) {
	f := newCombatFixture(t)
	want := []defs.TurretTier{{Range: 110, Cooldown: 1200}, {Range: 125, Cooldown: 1000}, {Range: 150, Cooldown: 800}}

	for i, tier := range want {
		if err := f.combat.Upgrade(f.turret); err != nil {
			t.Fatalf("upgrade %d: %v", i+1, err)
		}
		if f.turret.UpgradeLevel != i+2 {
			t.Fatalf("expected level %d, got %d", i+2, f.turret.UpgradeLevel)
		}
		if f.turret.Range != tier.Range || f.turret.CooldownMs != tier.Cooldown {
			t.Fatalf("level %d: expected %+v, got range %v cooldown %d", i+2, tier, f.turret.Range, f.turret.CooldownMs)
		}
	}

	err := f.combat.Upgrade(f.turret)
	if !errors.Is(err, ErrMaxUpgradeLevel) {
		t.Fatalf("expected ErrMaxUpgradeLevel, got %v", err)
	}
	if f.turret.UpgradeLevel != 4 || f.turret.Range != 150 {
		t.Fatalf("failed upgrade must not change the turret: %+v", f.turret)
	}
}

func TestTargetStatus(t *testing.T) {
	f := newCombatFixture(t)
	if got := f.combat.TargetStatus(f.turret); got != NoTarget {
		t.Fatalf("expected NoTarget, got %v", got)
	}

	id, _ := f.addEnemy(t, 50, 24, 10)
	f.combat.PickTarget(f.turretID, f.turret)
	if got := f.combat.TargetStatus(f.turret); got != TargetPresent {
		t.Fatalf("expected TargetPresent, got %v", got)
	}

	f.ecs.RemoveEnemy(id)
	if got := f.combat.TargetStatus(f.turret); got != TargetGone {
		t.Fatalf("expected TargetGone, got %v", got)
	}

	// Анимация доигрывается и без цели на поле.
	for i := 0; i < f.cfg.AnimationSteps; i++ {
		f.clock.Advance(f.cfg.AnimationDelayMs + 1)
		f.combat.Update(1)
	}
	if f.turret.HasTarget() {
		t.Fatalf("turret should release a removed target after the animation")
	}
}

func TestApplyDamage(t *testing.T) {
	e := &component.Enemy{Health: 3}
	ApplyDamage(e, 5)
	if e.Health != -2 {
		t.Fatalf("health may go below zero, got %d", e.Health)
	}
	ApplyDamage(e, 0)
	ApplyDamage(e, -4)
	if e.Health != -2 {
		t.Fatalf("non-positive damage must be ignored, got %d", e.Health)
	}
}
