package system

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/asciihero/internal/ecs"
)

// MonsterAwareness reports monsters whose viewshed contains the player.
// It reads visibility results only and takes no action.
type MonsterAwareness struct {
	Log logrus.FieldLogger
}

// Run returns the monsters that can see the player this turn.
func (s *MonsterAwareness) Run(w *ecs.World) []ecs.Entity {
	player, ok := w.Player()
	if !ok {
		return nil
	}
	playerPos, ok := w.Positions.Get(player)
	if !ok {
		return nil
	}

	var watchers []ecs.Entity
	for _, e := range ecs.Join(w.Monsters, w.Viewsheds) {
		vs, _ := w.Viewsheds.Get(e)
		if !vs.CanSee(playerPos.Point()) {
			continue
		}
		watchers = append(watchers, e)
		if s.Log != nil {
			name := "monster"
			if n, ok := w.Names.Get(e); ok {
				name = n.Name
			}
			s.Log.WithFields(logrus.Fields{
				"entity": e,
				"name":   name,
			}).Info("monster sees player")
		}
	}
	return watchers
}
