package config

import (
	"fmt"

	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const FileName = "prototype"

type WindowSettings struct {
	Title            string  `mapstructure:"title"`
	Width            int     `mapstructure:"width"`
	Height           int     `mapstructure:"height"`
	MouseSensitivity float32 `mapstructure:"mouseSensitivity"`
	InvertY          bool    `mapstructure:"invertY"`
}

type AudioSettings struct {
	Enabled           bool    `mapstructure:"enabled"`
	SampleRate        int     `mapstructure:"sampleRate"`
	MasterVolume      float64 `mapstructure:"masterVolume"`
	AttenuationRadius float32 `mapstructure:"attenuationRadius"`
}

type CharacterSettings struct {
	Extents      []float32 `mapstructure:"extents"`
	EyeHeight    float32   `mapstructure:"eyeHeight"`
	WalkSpeed    float32   `mapstructure:"walkSpeed"`
	JumpVelocity float32   `mapstructure:"jumpVelocity"`
	Mana         float32   `mapstructure:"mana"`
	MaxMana      float32   `mapstructure:"maxMana"`
	ManaRegen    float32   `mapstructure:"manaRegen"`
}

type ProjectileSettings struct {
	Radius       float32 `mapstructure:"radius"`
	Model        string  `mapstructure:"model"`
	InitialSpeed float32 `mapstructure:"initialSpeed"`
	MaxSpeed     float32 `mapstructure:"maxSpeed"`
	Bounciness   float32 `mapstructure:"bounciness"`
	GravityScale float32 `mapstructure:"gravityScale"`
	LifeSpan     float32 `mapstructure:"lifeSpan"`
	ImpulseScale float32 `mapstructure:"impulseScale"`
}

type WeaponSettings struct {
	MuzzleOffset    []float32 `mapstructure:"muzzleOffset"`
	ProjectileClass string    `mapstructure:"projectileClass"`
	FireSound       string    `mapstructure:"fireSound"`
	FireAnimation   string    `mapstructure:"fireAnimation"`
	BoomRadius      float32   `mapstructure:"boomRadius"`
	BoomPower       float32   `mapstructure:"boomPower"`
	BoomManaCost    float32   `mapstructure:"boomManaCost"`
	BoomEffect      string    `mapstructure:"boomEffect"`
	BoomEffectScale []float32 `mapstructure:"boomEffectScale"`
	AimEffect       string    `mapstructure:"aimEffect"`
	AimEffectScale  []float32 `mapstructure:"aimEffectScale"`
	PickupRadius    float32   `mapstructure:"pickupRadius"`
}

type EffectSettings struct {
	Name             string    `mapstructure:"name"`
	Lifetime         float32   `mapstructure:"lifetime"`
	BurstCount       int       `mapstructure:"burstCount"`
	Speed            float32   `mapstructure:"speed"`
	Size             float32   `mapstructure:"size"`
	ParticleLifetime float32   `mapstructure:"particleLifetime"`
	Color            []float32 `mapstructure:"color"`
}

type SoundSettings struct {
	Name      string  `mapstructure:"name"`
	Wave      string  `mapstructure:"wave"`
	Frequency float64 `mapstructure:"frequency"`
	Duration  int     `mapstructure:"durationMs"`
	Attack    int     `mapstructure:"attackMs"`
	Release   int     `mapstructure:"releaseMs"`
	Volume    float64 `mapstructure:"volume"`
}

type MontageSettings struct {
	Name     string  `mapstructure:"name"`
	Duration float32 `mapstructure:"duration"`
}

type Settings struct {
	LogLevel         string             `mapstructure:"logLevel"`
	LogCategories    []string           `mapstructure:"logCategories"`
	Level            string             `mapstructure:"level"`
	DefaultPawnClass string             `mapstructure:"defaultPawnClass"`
	Window           WindowSettings     `mapstructure:"window"`
	Audio            AudioSettings      `mapstructure:"audio"`
	Character        CharacterSettings  `mapstructure:"character"`
	Projectile       ProjectileSettings `mapstructure:"projectile"`
	Weapon           WeaponSettings     `mapstructure:"weapon"`
	Effects          []EffectSettings   `mapstructure:"effects"`
	Sounds           []SoundSettings    `mapstructure:"sounds"`
	Montages         []MontageSettings  `mapstructure:"montages"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logCategories", []string{"all"})
	viper.SetDefault("level", "")
	viper.SetDefault("defaultPawnClass", "FirstPersonCharacter")

	viper.SetDefault("window.title", "First Person Prototype")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.mouseSensitivity", 0.1)
	viper.SetDefault("window.invertY", true)

	viper.SetDefault("audio.enabled", false)
	viper.SetDefault("audio.sampleRate", 44100)
	viper.SetDefault("audio.masterVolume", 0.8)
	viper.SetDefault("audio.attenuationRadius", 4000)

	viper.SetDefault("character.extents", []float32{42, 42, 192})
	viper.SetDefault("character.eyeHeight", 60)
	viper.SetDefault("character.walkSpeed", 600)
	viper.SetDefault("character.jumpVelocity", 420)
	viper.SetDefault("character.mana", 100)
	viper.SetDefault("character.maxMana", 100)
	viper.SetDefault("character.manaRegen", 5)

	viper.SetDefault("projectile.radius", 5)
	viper.SetDefault("projectile.model", "")
	viper.SetDefault("projectile.initialSpeed", 3000)
	viper.SetDefault("projectile.maxSpeed", 3000)
	viper.SetDefault("projectile.bounciness", 0.6)
	viper.SetDefault("projectile.gravityScale", 1)
	viper.SetDefault("projectile.lifeSpan", 3)
	viper.SetDefault("projectile.impulseScale", 100)

	viper.SetDefault("weapon.muzzleOffset", []float32{100, 0, 10})
	viper.SetDefault("weapon.projectileClass", "FirstPersonProjectile")
	viper.SetDefault("weapon.fireSound", "FirstPersonTemplateWeaponFire02")
	viper.SetDefault("weapon.fireAnimation", "FP_Rifle_Shoot_Montage")
	viper.SetDefault("weapon.boomRadius", 300)
	viper.SetDefault("weapon.boomPower", 100000)
	viper.SetDefault("weapon.boomManaCost", 25)
	viper.SetDefault("weapon.boomEffect", "NS_Boom")
	viper.SetDefault("weapon.boomEffectScale", []float32{1, 1, 1})
	viper.SetDefault("weapon.aimEffect", "NS_Aim")
	viper.SetDefault("weapon.aimEffectScale", []float32{0.2, 0.2, 0.2})
	viper.SetDefault("weapon.pickupRadius", 32)

	viper.SetDefault("effects", []map[string]any{
		{"name": "NS_Boom", "lifetime": 1.5, "burstCount": 64, "speed": 400, "size": 12, "particleLifetime": 1, "color": []float32{1, 0.55, 0.1, 1}},
		{"name": "NS_Aim", "lifetime": 0, "burstCount": 1, "speed": 0, "size": 2, "particleLifetime": 0.05, "color": []float32{0.2, 0.8, 1, 1}},
	})
	viper.SetDefault("sounds", []map[string]any{
		{"name": "FirstPersonTemplateWeaponFire02", "wave": "saw", "frequency": 180, "durationMs": 140, "attackMs": 4, "releaseMs": 90, "volume": 0.6},
	})
	viper.SetDefault("montages", []map[string]any{
		{"name": "FP_Rifle_Shoot_Montage", "duration": 0.4},
	})
}

// Load sets the defaults and reads prototype.yaml from configDir. A missing file
// leaves the defaults in place.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			util.LogIOInfo(fmt.Sprintf("[Config] no %s.yaml in %s, using defaults", FileName, configDir))
			return nil
		}
		return errors.Wrap(err, "error reading config file")
	}
	util.LogIOInfo(fmt.Sprintf("[Config] loaded %s", viper.ConfigFileUsed()))
	return nil
}

// Get unmarshals the loaded configuration.
func Get() (Settings, error) {
	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return Settings{}, errors.Wrap(err, "invalid configuration")
	}
	return settings, nil
}
