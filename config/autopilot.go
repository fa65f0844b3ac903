package config

// AutopilotSkill affects how early the autopilot dodges and how often it uses alt-fire
type AutopilotSkill int

const (
	AutopilotEasy AutopilotSkill = iota
	AutopilotNormal
	AutopilotHard
)

// AutopilotSkillConfig holds tuning values for the autopilot at a specific skill
type AutopilotSkillConfig struct {
	DodgeRadius     float64 // enemy shots closer than this are dodged
	KeepDistance    float64 // preferred distance from the nearest enemy
	AltFireInterval float64 // seconds between alt-fire attempts
	StrafePeriod    float64 // seconds per strafe sweep when nothing is close
}

// AutopilotConfigData holds all autopilot configuration
type AutopilotConfigData struct {
	Skill  AutopilotSkill
	Skills map[AutopilotSkill]AutopilotSkillConfig
}

// Autopilot holds the scripted pilot used by the headless runner and demo mode
var Autopilot AutopilotConfigData

func init() {
	Autopilot = AutopilotConfigData{
		Skill: AutopilotNormal,
		Skills: map[AutopilotSkill]AutopilotSkillConfig{
			AutopilotEasy: {
				DodgeRadius:     40.0,
				KeepDistance:    120.0,
				AltFireInterval: 4.0,
				StrafePeriod:    3.0,
			},
			AutopilotNormal: {
				DodgeRadius:     70.0,
				KeepDistance:    160.0,
				AltFireInterval: 2.0,
				StrafePeriod:    2.0,
			},
			AutopilotHard: {
				DodgeRadius:     110.0,
				KeepDistance:    200.0,
				AltFireInterval: 1.0, // every cooldown
				StrafePeriod:    1.5,
			},
		},
	}
}

// AutopilotSettings returns the tuning for the selected skill.
func AutopilotSettings() AutopilotSkillConfig {
	return Autopilot.Skills[Autopilot.Skill]
}
