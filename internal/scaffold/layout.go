package scaffold

// Production phase folder names.
const (
	PreProduction  = "Pre-Production"
	Production     = "Production"
	PostProduction = "Post-Production"
)

// Supported engines. Custom adds no engine-specific folders.
const (
	EngineCustom = "Custom"
	EngineUnity  = "Unity"
	EngineUnreal = "Unreal"
	EngineGodot  = "Godot"
)

// Engines lists the accepted --engine values.
var Engines = []string{EngineCustom, EngineUnity, EngineUnreal, EngineGodot}

// KnownPlatforms lists the platforms the scaffolder recognizes. Unknown
// platforms are warned about but still get a build folder.
var KnownPlatforms = []string{
	"Windows", "MacOS", "Linux", "Android", "iOS",
	"PlayStation", "Xbox", "Nintendo", "Web",
}

// DefaultPlatforms is used when no platform list is given.
var DefaultPlatforms = []string{"Windows", "MacOS", "Linux"}

// Entry pairs a project-relative path with its description. Entries
// whose base name contains a dot are files, not directories.
type Entry struct {
	Path        string
	Description string
}

// projectLayout is the fixed directory template, in creation order.
var projectLayout = []Entry{
	{PreProduction + "/Idea", "Contains initial game concept documents and brainstorming materials."},
	{PreProduction + "/Story", "Contains narrative structure, plot outlines, and story development documents."},
	{PreProduction + "/Characters", "Contains character designs, backstories, and development."},
	{PreProduction + "/ArtDirection", "Contains art style guides, mood boards, and visual direction documents."},
	{PreProduction + "/Storyboard", "Contains storyboards for cutscenes and key game moments."},
	{PreProduction + "/ProductPlanning", "Contains project schedules, milestone planning, and production roadmaps."},
	{PreProduction + "/Marketing", "Contains early marketing plans, target audience analysis, and promotional strategy."},
	{PreProduction + "/VocalTracks", "Contains voice acting scripts, audition materials, and placeholder recordings."},
	{PreProduction + "/StoryReel", "Contains animatics and early visualization of game sequences."},
	{PreProduction + "/RnD", "Contains research and development materials for new gameplay features or technologies."},

	{Production + "/Layout", "Contains scene layout files and environment blocking."},
	{Production + "/Modeling", "Contains 3D modeling files and assets in production."},
	{Production + "/Texturing", "Contains texturing work files and materials in development."},
	{Production + "/Rigging", "Contains character and object rig files and setups."},
	{Production + "/Animation", "Contains animation work in progress and animation systems."},
	{Production + "/Lighting", "Contains lighting setups and environment illumination assets."},
	{Production + "/VFX", "Contains visual effects work and particle systems in development."},
	{Production + "/SoundFX", "Contains sound effects work files and mixing in progress."},
	{Production + "/Music", "Contains musical score work and soundtrack development."},
	{Production + "/Rendering", "Contains rendering outputs and material previews."},
	{Production + "/TitleCredits", "Contains title screen and credits sequence development."},
	{Production + "/CharSetup", "Contains character finalization and implementation."},

	{PostProduction + "/Compositing", "Contains scene composition work and final visual integration."},
	{PostProduction + "/2DVFX", "Contains 2D visual effects and motion graphics elements."},
	{PostProduction + "/ColorCorrection", "Contains color grading and final visual polish."},
	{PostProduction + "/FinalOutput", "Contains finalized game scenes ready for implementation."},

	{"Documentation/Design", "Contains game design documents, concept art, and gameplay specifications."},
	{"Documentation/Technical", "Contains technical documentation, architecture diagrams, and implementation details."},
	{"Documentation/API", "Contains API reference documentation for the game's programming interfaces."},

	{"Source/Core", "Contains core game engine systems and fundamental components."},
	{"Source/Game", "Contains game-specific code, gameplay mechanics, and game logic."},
	{"Source/Engine", "Contains engine components, rendering systems, physics, and other subsystems."},
	{"Source/Tools", "Contains development tools and utilities for the game development process."},
	{"Source/Tools/BlenderAddons", "Contains custom Blender add-ons for the game development pipeline."},

	{"Assets/Models/Sources", "Contains original Blender (.blend) model files."},
	{"Assets/Models/Exported", "Contains exported game-ready models in engine-compatible formats."},
	{"Assets/Textures", "Contains texture files, materials, and surface descriptions."},
	{"Assets/Animations", "Contains character and object animations."},
	{"Assets/Audio", "Contains sound effects, music, and voice recordings."},
	{"Assets/Shaders", "Contains shader programs for visual effects and rendering techniques."},
	{"Assets/UI", "Contains user interface assets, icons, and UI-specific graphics."},
	{"Assets/3DAnimate", "Contains 3D animation files and rigs for game characters and objects."},

	{"tmp/Builds", "Contains temporary build files and intermediate compilation results."},
	{"tmp/Cache", "Contains cached data for faster loading and processing."},
	{"tmp/Logs", "Contains log files generated during development and testing."},
	{"tmp/Backups", "Contains automatic backups of project files."},
	{"tmp/Renders", "Contains temporary rendering outputs and previews."},
	{"tmp/Debug", "Contains debug information and crash dumps."},
	{"tmp/Testing", "Contains temporary files generated during testing."},
	{"tmp/Artifacts", "Contains build artifacts and intermediate files."},
	{"tmp/AutoSave", "Contains auto-saved versions of project files."},
	{"tmp/Exports", "Contains temporary exported files before final placement."},
	{"tmp/Media/Images", "Contains temporary images, screenshots, and visual assets used during development."},
	{"tmp/Media/Audio", "Contains temporary audio files, voice recordings, and sound effects for testing."},
	{"tmp/Media/Video", "Contains temporary video files, cutscenes, and animations for review."},
	{"tmp/Media/Textures", "Contains in-progress and temporary textures before final implementation."},
	{"tmp/Prototypes", "Contains prototype assets and code for experimental features."},
	{"tmp/Staging", "Contains assets staged for review before moving to production assets."},
	{"tmp/Review", "Contains assets under review by team members or clients."},
	{"tmp/Processing", "Contains assets currently being processed or converted."},
	{"tmp/Import", "Contains recently imported assets pending proper organization."},
	{"tmp/Outsourced", "Contains temporary storage for assets from external partners or contractors."},

	{"Tests/Unit", "Contains unit tests for individual components and systems."},
	{"Tests/Integration", "Contains integration tests for testing how components work together."},

	{"ThirdParty/Libraries", "Contains third-party libraries and dependencies used by the game."},
	{"ThirdParty/Tools", "Contains third-party tools used in the game development process."},

	{"Scripts/Build", "Contains scripts for automating the build process."},
	{"Scripts/Deploy", "Contains scripts for deploying the game to various platforms."},
	{"Scripts/Tools", "Contains utility scripts for development workflow automation."},
	{"Scripts/Pipeline", "Contains scripts for asset pipeline automation, particularly for Blender to game engine exports."},
	{"Scripts/CI", "Contains continuous integration scripts for automated testing, building, and deployment in CI/CD workflows."},

	{"Config/Engine", "Contains configuration files for the game engine."},
	{"Config/Game", "Contains game-specific configuration files."},

	{"Versions/Current", "Contains or links to the current active development version."},
	{"Releases/Internal", "Contains builds for internal testing and development."},
	{"Releases/External", "Contains builds for external testing and beta releases."},
	{"Releases/Public", "Contains public release builds and distribution packages."},
}

// topLevelLayout describes the umbrella directories; they get a
// description.txt of their own after the detailed entries are created.
// The Build description is completed with the platform list at run time.
var topLevelLayout = []Entry{
	{"Documentation", "Contains all project documentation, including design documents, technical specifications, and API references."},
	{"Source", "Contains all source code for the game, including core systems, gameplay code, and development tools."},
	{"Assets", "Contains all game assets such as models, textures, animations, audio, and other resources."},
	{"Tests", "Contains all testing code, including unit tests and integration tests."},
	{"ThirdParty", "Contains third-party libraries, tools, and dependencies."},
	{"Scripts", "Contains automation scripts for building, deployment, and development workflows."},
	{"Config", "Contains configuration files for both the game engine and game-specific settings."},
	{"Versions", "Contains or tracks different versions of the game during development."},
	{"Releases", "Contains organized release builds for different distribution channels."},
	{"tmp", "Contains all temporary files, caches, logs, and intermediate build artifacts."},
	{PreProduction, "Contains all pre-production materials including concept, story, design, and planning."},
	{Production, "Contains all production phase materials including asset creation, animation, and implementation."},
	{PostProduction, "Contains all post-production materials including compositing, effects, and final polishing."},
}

// engineLayouts maps an engine to its extra folders and files.
// "[GameName]" in a path is replaced with the project directory name.
var engineLayouts = map[string][]Entry{
	EngineUnity: {
		{"Assets/Prefabs", "Contains reusable Unity prefab objects."},
		{"Assets/Materials", "Contains Unity material definitions."},
		{"Assets/Scenes", "Contains Unity scene files."},
		{"Assets/Scripts", "Contains C# scripts for Unity."},
		{"Assets/Editor", "Contains Unity editor extensions and scripts."},
		{"Assets/Resources", "Contains assets that need to be accessed via Resources.Load."},
		{"ProjectSettings", "Contains Unity project settings."},
		{"Packages", "Contains Unity package manager configuration."},
	},
	EngineUnreal: {
		{"Content/Blueprints", "Contains Unreal Blueprint assets."},
		{"Content/Materials", "Contains Unreal material definitions."},
		{"Content/Levels", "Contains Unreal level files."},
		{"Content/Characters", "Contains character assets and blueprints."},
		{"Content/UI", "Contains UI assets and widgets."},
		{"Source/[GameName]", "Contains C++ code for the game."},
		{"Config/DefaultEngine.ini", "Contains engine configuration."},
		{"Config/DefaultGame.ini", "Contains game configuration."},
	},
	EngineGodot: {
		{"scenes", "Contains Godot scene files."},
		{"scripts", "Contains GDScript files."},
		{"assets", "Contains game assets for Godot."},
		{"addons", "Contains Godot addons and plugins."},
		{"project.godot", "Godot project configuration file."},
		{"export_presets.cfg", "Godot export configurations."},
	},
	EngineCustom: {},
}

// ValidEngine reports whether name is one of the supported engines.
func ValidEngine(name string) bool {
	for _, e := range Engines {
		if e == name {
			return true
		}
	}
	return false
}

// KnownPlatform reports whether name is in the recognized platform set.
func KnownPlatform(name string) bool {
	for _, p := range KnownPlatforms {
		if p == name {
			return true
		}
	}
	return false
}
