package combat

// resolveCollisions runs after every object has moved: enemy shots against
// the player, then for each enemy its friendly shots and its body slam.
// Enemies brought to zero health are killed after their slam.
func (s *Simulation) resolveCollisions(f *Frame) {
	player := s.player
	before := player.Health

	if player.Active() {
		s.broad.rebuild(tagEnemyShot, s.hostile)
		for _, p := range s.broad.near(player, tagEnemyShot) {
			if !p.Active() || !p.IsColliding(player) {
				continue
			}
			player.TakeDamage(s.cfg.Collision.EnemyShotDamage)
			p.MarkForRemoval()
		}
	}

	s.broad.rebuild(tagFriendlyShot, s.friendly)
	for _, e := range s.enemies {
		if !e.Active() {
			continue
		}
		for _, p := range s.broad.near(e, tagFriendlyShot) {
			if !p.Active() || !e.IsColliding(p) {
				continue
			}
			e.TakeDamage(p.Damage)
			p.MarkForRemoval()
		}

		// a body overlapping the player still slams on the pass it dies
		if player.Active() && e.IsColliding(player) {
			player.TakeDamage(e.SlamDamage)
			push := e.Position.DirTo(player.Position).Scale(s.cfg.Collision.Knockback)
			player.ForcePush(push)
			e.ForcePush(push.Neg())
		}

		if !e.Alive() {
			e.Kill(f)
			s.stats.Kills++
			s.log.Debug("enemy killed", "kind", e.Kind.String(), "health", e.Health)
		}
	}

	s.stats.DamageTaken += before - player.Health
	if player.Active() && !player.Alive() {
		player.MarkForRemoval()
		s.log.Info("player destroyed", "health", player.Health)
	}
}
