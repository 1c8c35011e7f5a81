// Package config provides the hook's own settings, as distinct from the
// rule document that drives file patching.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (Defaults): the /home/container convention used
//     by the game server images this hook ships in.
//  2. STARTHOOK_* environment variables (e.g. STARTHOOK_RULES_PATH,
//     STARTHOOK_WORKING_DIR), so an image can retarget the hook without
//     rebuilding.
//  3. An explicit settings file passed on the command line (CfgFile).
//
// InitConfig wires the layers into viper once at process start;
// CurrentConfig then snapshots them into an immutable HookConfig that
// the rest of the hook threads around explicitly.
package config
