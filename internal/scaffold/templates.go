package scaffold

import "text/template"

var readmeTmpl = template.Must(template.New("readme").Parse(`# {{.GameName}}

Game development project created on {{.Created}}

## Game Engine

{{.Engine}}

## Target Platforms

{{.Platforms}}

## Directory Structure

### Production Pipeline

- **Pre-Production**: Pre-production materials (concept, story, design, planning)
- **Production**: Production phase materials (asset creation, animation, implementation)
- **Post-Production**: Post-production materials (compositing, effects, final polishing)

### Development Structure

- **Documentation**: Design documents, technical specifications, and API references
- **Source**: Source code for the game and engine
- **Assets**: Game assets including models, textures, animations, audio, etc.
- **Build**: Build files for different platforms
- **Tests**: Test code including unit tests and integration tests
- **ThirdParty**: Third-party libraries and tools
- **Scripts**: Automation and utility scripts
- **Config**: Configuration files
- **Versions**: Version management
- **Releases**: Release builds for different distribution channels
- **tmp**: Temporary files, builds, caches, and logs
`))

var rootDescriptionTmpl = template.Must(template.New("rootdesc").Parse(`# {{.GameName}} Project Root

This is the main project directory for the game. It contains all source code, assets, and documentation.
The directory structure follows game development best practices and is organized by function.
Each subdirectory contains a description.txt file explaining its purpose.
Game Engine: {{.Engine}}
Target Platforms: {{.Platforms}}
`))

const tmpReadme = `# Temporary Files Directory

This directory contains all temporary files used during the development process. Files in this directory are not intended for version control and may be deleted by cleanup scripts.

## Directory Structure

- **Builds**: Temporary build files and intermediate compilation results
- **Cache**: Cached data for faster loading and processing
- **Logs**: Log files generated during development and testing
- **Backups**: Automatic backups of project files
- **Renders**: Temporary rendering outputs and previews
- **Debug**: Debug information and crash dumps
- **Testing**: Temporary files generated during testing
- **Artifacts**: Build artifacts and intermediate files
- **AutoSave**: Auto-saved versions of project files
- **Exports**: Temporary exported files before final placement
- **Media**: Temporary media assets
  - **Images**: Temporary images, screenshots, and visual assets
  - **Audio**: Temporary audio files, voice recordings, and sound effects
  - **Video**: Temporary video files, cutscenes, and animations
  - **Textures**: In-progress and temporary textures
- **Prototypes**: Prototype assets and code for experimental features
- **Staging**: Assets staged for review before production
- **Review**: Assets under review by team members or clients
- **Processing**: Assets currently being processed or converted
- **Import**: Recently imported assets pending organization
- **Outsourced**: Temporary storage for assets from external partners

## Cleanup

This directory can be cleaned periodically to free up disk space. Use the cleanup scripts in the Scripts/Tools directory for this purpose.
`

const gitignore = `# Build directories
Build/
tmp/

# Temporary files
*.tmp
*.temp
*.bak

# OS specific files
.DS_Store
Thumbs.db

# IDE specific files
.idea/
.vscode/
*.sublime-project
*.sublime-workspace

# Python specific
__pycache__/
*.py[cod]
*$py.class
venv/
env/
.env
`

// cleanupScript is the generated tmp cleaner, written to
// Scripts/Tools/cleanup_tmp.py in every new project.
const cleanupScript = `#!/usr/bin/env python
# -*- coding: utf-8 -*-

import os
import sys
import shutil
import datetime
import argparse

def cleanup_tmp_directory(project_root, dry_run=False, age_days=7, exclude_dirs=None):
    """
    Cleans up temporary files in the tmp directory that are older than specified age

    Args:
        project_root (str): Root directory of the project
        dry_run (bool): If True, only print what would be deleted without actually deleting
        age_days (int): Delete files older than this many days
        exclude_dirs (list): List of directories to exclude from cleanup
    """
    if exclude_dirs is None:
        exclude_dirs = ['Backups']

    tmp_dir = os.path.join(project_root, 'tmp')
    if not os.path.exists(tmp_dir):
        print(f"Error: Temporary directory not found at {tmp_dir}")
        return

    cutoff_date = datetime.datetime.now() - datetime.timedelta(days=age_days)
    cutoff_timestamp = cutoff_date.timestamp()

    print(f"Cleaning up files older than {cutoff_date.strftime('%Y-%m-%d %H:%M:%S')}")
    print(f"{'[DRY RUN] ' if dry_run else ''}Will delete files and empty directories in {tmp_dir}")
    print(f"Excluding directories: {exclude_dirs}")

    total_size = 0
    total_files = 0
    total_dirs = 0

    # Walk through all files and directories in tmp
    for root, dirs, files in os.walk(tmp_dir, topdown=False):
        # Skip excluded directories
        rel_path = os.path.relpath(root, tmp_dir)
        if rel_path == '.':
            rel_path = ''

        skip = False
        for exclude in exclude_dirs:
            if rel_path == exclude or rel_path.startswith(exclude + os.sep):
                skip = True
                break

        if skip:
            continue

        # Delete old files
        for file in files:
            file_path = os.path.join(root, file)
            try:
                file_stat = os.stat(file_path)
                file_mtime = file_stat.st_mtime

                if file_mtime < cutoff_timestamp:
                    total_size += file_stat.st_size
                    total_files += 1
                    print(f"{'[DRY RUN] ' if dry_run else ''}Deleting file: {file_path}")
                    if not dry_run:
                        os.unlink(file_path)
            except Exception as e:
                print(f"Error processing {file_path}: {e}")

        # Delete empty directories
        if not os.listdir(root) and root != tmp_dir:
            total_dirs += 1
            print(f"{'[DRY RUN] ' if dry_run else ''}Removing empty directory: {root}")
            if not dry_run:
                os.rmdir(root)

    # Convert total size to a human-readable format
    size_str = ''
    if total_size < 1024:
        size_str = f"{total_size} bytes"
    elif total_size < 1024 * 1024:
        size_str = f"{total_size / 1024:.2f} KB"
    elif total_size < 1024 * 1024 * 1024:
        size_str = f"{total_size / (1024 * 1024):.2f} MB"
    else:
        size_str = f"{total_size / (1024 * 1024 * 1024):.2f} GB"

    print(f"\nCleanup Summary:")
    print(f"{'[DRY RUN] ' if dry_run else ''}Would free up {size_str} of disk space")
    print(f"{'[DRY RUN] ' if dry_run else ''}Deleted {total_files} files and {total_dirs} directories")

def main():
    parser = argparse.ArgumentParser(description="Clean up temporary files in the project's tmp directory")
    parser.add_argument('--project-root', help='Root directory of the project')
    parser.add_argument('--dry-run', action='store_true', help='Only print what would be deleted without actually deleting')
    parser.add_argument('--age', type=int, default=7, help='Delete files older than this many days (default: 7)')
    parser.add_argument('--exclude', type=str, default='Backups', help='Comma-separated list of directories to exclude from cleanup (default: Backups)')

    args = parser.parse_args()

    # Find project root if not specified
    project_root = args.project_root
    if not project_root:
        # Try to find it by looking for the tmp directory
        current_dir = os.path.dirname(os.path.abspath(__file__))
        # Go up to Scripts/Tools, then up to project root
        project_root = os.path.normpath(os.path.join(current_dir, '..', '..', '..'))

        if not os.path.exists(os.path.join(project_root, 'tmp')):
            print("Error: Could not find project root directory. Please specify with --project-root")
            return 1

    exclude_dirs = [dir.strip() for dir in args.exclude.split(',')]

    cleanup_tmp_directory(project_root, args.dry_run, args.age, exclude_dirs)
    return 0

if __name__ == "__main__":
    sys.exit(main())
`
